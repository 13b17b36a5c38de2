package grid

import (
	"fmt"

	"github.com/im7mortal/UTM"
)

// Reference georeferences the upper-left corner of the grid.
type Reference struct {
	Lat, Lon float64
	Rotation float64 // clockwise, degrees
}

// UeNe projects the corner to UTM easting/northing.
func (r Reference) UeNe() (float64, float64, error) {
	e, n, _, _, err := UTM.FromLatLon(r.Lat, r.Lon, r.Lat >= 0.)
	if err != nil {
		return 0., 0., fmt.Errorf("grid.Reference: %v", err)
	}
	return e, n, nil
}

// Header renders the spatial-reference comment written to the
// discretization file.
func (r Reference) Header() string {
	e, n, err := r.UeNe()
	if err != nil {
		return fmt.Sprintf("# xul:0.0, yul:0.0, rotation:%g", r.Rotation)
	}
	return fmt.Sprintf("# xul:%.2f, yul:%.2f, rotation:%g", e, n, r.Rotation)
}
