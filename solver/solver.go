// Package solver locates and runs the external groundwater-flow
// executable. The engine is a black box reached through its working
// directory and a name file; the only feedback is its text stream and
// the termination marker within it.
package solver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrNotFound flags an executable that cannot be located before
	// invocation.
	ErrNotFound = errors.New("solver executable not found")
	// ErrLaunch flags an OS-level failure to spawn the process.
	ErrLaunch = errors.New("solver process failed to launch")
)

// DefaultExe is the conventional executable name.
const DefaultExe = "mfnwt"

// Find resolves name to an executable path, applying the platform
// suffix. name may be a bare name searched on PATH or an explicit path.
func Find(name string) (string, error) {
	if name == "" {
		name = DefaultExe
	}
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(name), ".exe") {
		name += ".exe"
	}
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return filepath.Abs(name)
	}
	fp, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fp, nil
}

// Result reports one solver invocation.
type Result struct {
	Success  bool
	Messages []string // captured output, in order
}

// Run invokes exe against namfile with workdir as the working
// directory and blocks until exit. Success requires the normal
// termination marker in the output stream; the exit code alone never
// implies convergence. Cancelling ctx kills the child and reports
// success=false.
func Run(ctx context.Context, exe, workdir, namfile string) (*Result, error) {
	cmd := exec.CommandContext(ctx, exe, namfile)
	cmd.Dir = workdir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	var msgs []string
	sc := bufio.NewScanner(stdout)
	for sc.Scan() {
		if ln := strings.TrimRight(sc.Text(), " \r"); ln != "" {
			msgs = append(msgs, ln)
		}
	}
	if err := sc.Err(); err != nil {
		// keep the diagnostic; whatever followed was not captured
		msgs = append(msgs, fmt.Sprintf(" output stream error: %v", err))
	}

	werr := cmd.Wait()
	res := &Result{Success: NormalTermination(msgs), Messages: msgs}
	if ctx.Err() != nil {
		res.Success = false
		return res, nil
	}
	if werr != nil {
		// abnormal exit: reported as non-success, not as a crash
		res.Success = false
	}
	return res, nil
}

// NormalTermination scans the captured stream for the engine's
// success marker.
func NormalTermination(msgs []string) bool {
	for _, m := range msgs {
		if strings.Contains(strings.ToLower(m), "normal termination") {
			return true
		}
	}
	return false
}
