package launch

import (
	"os/exec"
	"testing"
)

var ExecFailed = execFailed

// ReplaceStart replaces the function starting the delegated tool for the duration of t.
func ReplaceStart(t *testing.T, f func(cmd *exec.Cmd) error) {
	t.Cleanup(func() { commandStart = (*exec.Cmd).Start })
	commandStart = f
}
