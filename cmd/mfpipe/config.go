// Scenario configuration loading for the mfpipe CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/andyrich/mfpipe"
)

// Scenario configuration keys.
const (
	cfgName         = "name"
	cfgNcol         = "ncol"
	cfgDelr         = "delr"
	cfgDelc         = "delc"
	cfgTop          = "top"
	cfgHeadLeft     = "head_left"
	cfgHeadRight    = "head_right"
	cfgBase         = "base"
	cfgStepInterval = "step_interval"
	cfgStepDrop     = "step_drop"
	cfgHk           = "hk"
	cfgLaytyp       = "laytyp"
	cfgLat          = "lat"
	cfgLon          = "lon"
	cfgWells        = "wells"
	cfgExe          = "exe"
)

// loadScenario reads the scenario file, falling back to the reference
// section for any key not given. A missing file with no path set is
// not an error.
func loadScenario(fp string) (mfpipe.Scenario, error) {
	s := mfpipe.DefaultScenario()

	v := viper.New()
	v.SetDefault(cfgName, s.Name)
	v.SetDefault(cfgNcol, s.Section.Ncol)
	v.SetDefault(cfgDelr, s.Section.Delr)
	v.SetDefault(cfgDelc, s.Section.Delc)
	v.SetDefault(cfgTop, s.Section.Top)
	v.SetDefault(cfgHeadLeft, s.Section.HLeft)
	v.SetDefault(cfgHeadRight, s.Section.HRight)
	v.SetDefault(cfgBase, s.Section.Base)
	v.SetDefault(cfgStepInterval, s.Section.StepInterval)
	v.SetDefault(cfgStepDrop, s.Section.StepDrop)
	v.SetDefault(cfgHk, s.Section.Hk)
	v.SetDefault(cfgLaytyp, s.Section.Laytyp)
	v.SetDefault(cfgExe, "")
	v.SetDefault("nwt.headtol", s.Nwt.Headtol)
	v.SetDefault("nwt.fluxtol", s.Nwt.Fluxtol)
	v.SetDefault("nwt.maxiterout", s.Nwt.Maxiterout)
	v.SetDefault("nwt.thickfact", s.Nwt.Thickfact)
	v.SetDefault("nwt.linmeth", s.Nwt.Linmeth)
	v.SetDefault("nwt.iprnwt", s.Nwt.Iprnwt)
	v.SetDefault("nwt.ibotav", s.Nwt.Ibotav)
	v.SetDefault("nwt.options", s.Nwt.Options)

	if fp != "" {
		v.SetConfigFile(fp)
		if err := v.ReadInConfig(); err != nil {
			return s, fmt.Errorf("read scenario config: %w", err)
		}
	}

	s.Name = v.GetString(cfgName)
	s.Section.Ncol = v.GetInt(cfgNcol)
	s.Section.Delr = v.GetFloat64(cfgDelr)
	s.Section.Delc = v.GetFloat64(cfgDelc)
	s.Section.Top = v.GetFloat64(cfgTop)
	s.Section.HLeft = v.GetFloat64(cfgHeadLeft)
	s.Section.HRight = v.GetFloat64(cfgHeadRight)
	s.Section.Base = v.GetFloat64(cfgBase)
	s.Section.StepInterval = v.GetInt(cfgStepInterval)
	s.Section.StepDrop = v.GetFloat64(cfgStepDrop)
	s.Section.Hk = v.GetFloat64(cfgHk)
	s.Section.Laytyp = v.GetInt(cfgLaytyp)
	s.Ref.Lat = v.GetFloat64(cfgLat)
	s.Ref.Lon = v.GetFloat64(cfgLon)
	s.Exe = v.GetString(cfgExe)
	s.Nwt.Headtol = v.GetFloat64("nwt.headtol")
	s.Nwt.Fluxtol = v.GetFloat64("nwt.fluxtol")
	s.Nwt.Maxiterout = v.GetInt("nwt.maxiterout")
	s.Nwt.Thickfact = v.GetFloat64("nwt.thickfact")
	s.Nwt.Linmeth = v.GetInt("nwt.linmeth")
	s.Nwt.Iprnwt = v.GetInt("nwt.iprnwt")
	s.Nwt.Ibotav = v.GetInt("nwt.ibotav")
	s.Nwt.Options = v.GetString("nwt.options")
	if v.IsSet(cfgWells) {
		if err := v.UnmarshalKey(cfgWells, &s.Wells); err != nil {
			return s, fmt.Errorf("read scenario config: %w", err)
		}
	}
	return s, nil
}
