// Package launch runs the tool an as invocation is delegated to and maps its termination to an exit code.
package launch

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"git.gensokyo.uk/toolchain/gas/internal/fmsg"
	"git.gensokyo.uk/toolchain/gas/translate"
)

const (
	// ExitLaunch is the exit code when the delegated tool could not be started.
	ExitLaunch = 127
	// ExitAbnormal is the exit code when the delegated tool did not exit normally.
	ExitAbnormal = 1
	// ExitFailure is the exit code for internal failures of the current process.
	ExitFailure = 1
)

// Launcher holds the standard streams and environment of the delegated tool.
type Launcher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Env is the environment of the delegated tool,
	// nil inherits the environment of the current process.
	Env []string
}

// Std shares the standard streams and environment of the current process with the delegated tool.
var Std = &Launcher{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}

// Run starts argv[0] with argv, waits for it and returns the resulting exit code.
// A non-nil error is only returned on failures of the current process,
// in which case no exit code is available.
func (l *Launcher) Run(argv translate.Argv) (int, error) {
	if len(argv) == 0 {
		return ExitFailure, fmsg.WrapErr(syscall.EINVAL, "attempted to launch with zero length argv")
	}
	if err := argv.Check(); err != nil {
		return ExitFailure, fmsg.WrapErrSuffix(err, "invalid argument vector:")
	}

	cmd := exec.Command(argv[0])
	cmd.Args = argv
	cmd.Env = l.Env
	cmd.Stdin, cmd.Stdout, cmd.Stderr = l.Stdin, l.Stdout, l.Stderr

	if err := commandStart(cmd); err != nil {
		if !execFailed(err) {
			return ExitFailure, fmsg.WrapErrSuffix(err, "fork failed:")
		}
		// the image replacement failed in the child
		fmsg.Verbosef("cannot start %s: %v", argv[0], err)
		return ExitLaunch, nil
	}
	fmsg.Verbosef("started %s", argv[0])

	if err := cmd.Wait(); err != nil {
		var exitError *exec.ExitError
		if !errors.As(err, &exitError) {
			return ExitFailure, fmsg.WrapErrSuffix(err, "waitpid failed:")
		}
	}
	return exitCode(cmd.ProcessState), nil
}

var commandStart = (*exec.Cmd).Start

// execFailed returns whether err describes a failure to replace the program image,
// as opposed to a failure to create the child.
//
// Both are reported by [os.StartProcess] as a [os.PathError] with Op "fork/exec".
// Creating the child only fails with the errnos in forkErrno, every other errno
// is returned by execve. ENOMEM is returned by both and is treated as a fork failure.
func execFailed(err error) bool {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, exec.ErrDot) {
		return true
	}

	var pathError *os.PathError
	if !errors.As(err, &pathError) || pathError.Op != "fork/exec" {
		return false
	}

	var errno syscall.Errno
	if !errors.As(pathError.Err, &errno) {
		return false
	}
	return !forkErrno(errno)
}

// forkErrno returns whether errno is returned by fork or clone.
func forkErrno(errno syscall.Errno) bool {
	switch errno {
	case unix.EAGAIN, unix.ENOMEM, unix.ENOSYS, unix.ENOSPC:
		return true
	default:
		return false
	}
}

// exitCode maps the termination of a child to an exit code.
func exitCode(state *os.ProcessState) int {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		if state.Exited() {
			return state.ExitCode()
		}
		return ExitAbnormal
	}

	switch {
	case ws.Exited():
		return ws.ExitStatus()
	case ws.Signaled():
		fmsg.Verbosef("pid %d terminated by %s", state.Pid(), unix.SignalName(ws.Signal()))
	default:
		fmsg.Verbosef("pid %d terminated abnormally: %s", state.Pid(), state)
	}
	return ExitAbnormal
}
