package launch_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"

	"git.gensokyo.uk/toolchain/gas/internal/fmsg"
	"git.gensokyo.uk/toolchain/gas/launch"
	"git.gensokyo.uk/toolchain/gas/translate"
)

const (
	// envStub is set in the environment of the child stub.
	envStub = "GAS_TEST_LAUNCH_STUB"
	// envPassthrough is checked by the child stub to be inherited.
	envPassthrough = "GAS_TEST_LAUNCH_PASSTHROUGH"
)

// TestLaunchChildStub is the delegated tool started by tests in this package.
func TestLaunchChildStub(t *testing.T) {
	if os.Getenv(envStub) != "1" {
		return
	}

	var args []string
	for i, arg := range os.Args {
		if arg == "--" {
			args = os.Args[i+1:]
			break
		}
	}
	if len(args) == 0 {
		os.Exit(0xfe)
	}

	switch args[0] {
	case "exit":
		code, err := strconv.Atoi(args[1])
		if err != nil {
			os.Exit(0xfe)
		}
		os.Exit(code)

	case "kill":
		if err := syscall.Kill(os.Getpid(), syscall.SIGKILL); err != nil {
			os.Exit(0xfe)
		}
		select {}

	case "args":
		// this output is checked by parent
		if _, err := translate.Argv(args[1:]).WriteTo(os.Stdout); err != nil {
			os.Exit(0xfe)
		}
		os.Exit(0)

	case "env":
		if _, err := os.Stdout.WriteString(os.Getenv(envPassthrough)); err != nil {
			os.Exit(0xfe)
		}
		os.Exit(0)

	case "cat":
		if _, err := os.Stdout.ReadFrom(os.Stdin); err != nil {
			os.Exit(0xfe)
		}
		os.Exit(0)

	default:
		os.Exit(0xfe)
	}
}

// stubArgv returns the argument vector starting [TestLaunchChildStub] with args.
func stubArgv(args ...string) translate.Argv {
	return append(translate.Argv{os.Args[0], "-test.run=^TestLaunchChildStub$", "--"}, args...)
}

// newStubLauncher returns a [launch.Launcher] writing to stdout and enabling the stub via env.
func newStubLauncher(stdout *bytes.Buffer) *launch.Launcher {
	return &launch.Launcher{
		Stdout: stdout,
		Stderr: os.Stderr,
		Env:    append(os.Environ(), envStub+"=1"),
	}
}

func TestRunExitCode(t *testing.T) {
	for _, code := range []int{0, 1, 2, 42, 126, 127, 255} {
		t.Run(strconv.Itoa(code), func(t *testing.T) {
			got, err := newStubLauncher(new(bytes.Buffer)).Run(stubArgv("exit", strconv.Itoa(code)))
			if err != nil {
				t.Fatalf("Run: error = %v", err)
			}
			if got != code {
				t.Errorf("Run: %d, want %d", got, code)
			}
		})
	}
}

func TestRunSignal(t *testing.T) {
	got, err := newStubLauncher(new(bytes.Buffer)).Run(stubArgv("kill"))
	if err != nil {
		t.Fatalf("Run: error = %v", err)
	}
	if got != launch.ExitAbnormal {
		t.Errorf("Run: %d, want %d", got, launch.ExitAbnormal)
	}
}

func TestRunArgs(t *testing.T) {
	stdout := new(bytes.Buffer)
	want := translate.Argv{"-c", "-x", "assembler", "a b.s", "-o", "a.out", "-"}
	if code, err := newStubLauncher(stdout).Run(stubArgv(append([]string{"args"}, want...)...)); err != nil {
		t.Fatalf("Run: error = %v", err)
	} else if code != 0 {
		t.Fatalf("Run: %d", code)
	}

	got := strings.Split(strings.TrimSuffix(stdout.String(), "\x00"), "\x00")
	if diff := cmp.Diff([]string(want), got); diff != "" {
		t.Errorf("Run: argv mismatch (-want +got):\n%s", diff)
	}
}

func TestRunStdin(t *testing.T) {
	const want = "\t.text\n\tret\n"
	stdout := new(bytes.Buffer)
	l := newStubLauncher(stdout)
	l.Stdin = strings.NewReader(want)
	if code, err := l.Run(stubArgv("cat")); err != nil {
		t.Fatalf("Run: error = %v", err)
	} else if code != 0 {
		t.Fatalf("Run: %d", code)
	}
	if got := stdout.String(); got != want {
		t.Errorf("Run: stdin %q, want %q", got, want)
	}
}

func TestRunInheritEnv(t *testing.T) {
	t.Setenv(envStub, "1")
	t.Setenv(envPassthrough, "inherited")

	stdout := new(bytes.Buffer)
	l := &launch.Launcher{Stdout: stdout, Stderr: os.Stderr}
	if code, err := l.Run(stubArgv("env")); err != nil {
		t.Fatalf("Run: error = %v", err)
	} else if code != 0 {
		t.Fatalf("Run: %d", code)
	}
	if got := stdout.String(); got != "inherited" {
		t.Errorf("Run: environment %q, want %q", got, "inherited")
	}
}

func TestRunLaunchFailure(t *testing.T) {
	d := t.TempDir()
	notExecutable := filepath.Join(d, "as")
	if err := os.WriteFile(notExecutable, []byte("#!/bin/sh\nexit 0\n"), 0644); err != nil {
		t.Fatalf("WriteFile: error = %v", err)
	}
	notDir := filepath.Join(notExecutable, "as")

	testCases := []struct {
		name string
		path string
	}{
		{"nonexistent", "/nonexistent/usr/bin/as"},
		{"not executable", notExecutable},
		{"not directory", notDir},
		{"directory", d},
		{"not found in PATH", "gas-nonexistent-tool"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := new(strings.Builder)
			fmsg.PrepareOutput("test", out)
			fmsg.Store(true)
			t.Cleanup(func() { fmsg.Store(false) })

			got, err := launch.Std.Run(translate.Argv{tc.path, "foo.s"})
			if err != nil {
				t.Fatalf("Run: error = %v", err)
			}
			if got != launch.ExitLaunch {
				t.Errorf("Run: %d, want %d", got, launch.ExitLaunch)
			}
			if !strings.HasPrefix(out.String(), "test: cannot start "+tc.path+": ") {
				t.Errorf("Run: verbose output %q", out.String())
			}
		})
	}
}

func TestRunInvalid(t *testing.T) {
	testCases := []struct {
		name        string
		argv        translate.Argv
		wantMessage string
	}{
		{"zero length", nil, "attempted to launch with zero length argv\n"},
		{"null", translate.Argv{"/usr/bin/as", "\x00"},
			"invalid argument vector: argument 1 \"\\x00\" contains null character\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := launch.Std.Run(tc.argv)
			if !errors.Is(err, syscall.EINVAL) {
				t.Errorf("Run: error = %v, want %v", err, syscall.EINVAL)
			}
			if code != launch.ExitFailure {
				t.Errorf("Run: %d, want %d", code, launch.ExitFailure)
			}

			var e *fmsg.BaseError
			if !errors.As(err, &e) {
				t.Fatalf("Run: error = %#v", err)
			}
			if got := e.Message(); got != tc.wantMessage {
				t.Errorf("Message: %q, want %q", got, tc.wantMessage)
			}
		})
	}
}

func TestRunStartFailure(t *testing.T) {
	testCases := []struct {
		name        string
		start       func(cmd *exec.Cmd) error
		want        error
		wantMessage string
	}{
		{"fork", func(cmd *exec.Cmd) error {
			return &os.PathError{Op: "fork/exec", Path: cmd.Path, Err: syscall.EAGAIN}
		}, syscall.EAGAIN,
			"fork failed: fork/exec /usr/bin/cc: " + syscall.EAGAIN.Error() + "\n"},
		{"stdio", func(cmd *exec.Cmd) error {
			return os.NewSyscallError("pipe2", syscall.EMFILE)
		}, syscall.EMFILE,
			"fork failed: pipe2: " + syscall.EMFILE.Error() + "\n"},
		{"wait", func(*exec.Cmd) error { return nil }, nil,
			"waitpid failed: exec: not started\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			launch.ReplaceStart(t, tc.start)

			code, err := launch.Std.Run(translate.Argv{"/usr/bin/cc", "-c", "-x", "assembler", "-"})
			if code != launch.ExitFailure {
				t.Errorf("Run: %d, want %d", code, launch.ExitFailure)
			}
			if err == nil {
				t.Fatal("Run: unexpected success")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("Run: error = %v, want %v", err, tc.want)
			}

			var e *fmsg.BaseError
			if !errors.As(err, &e) {
				t.Fatalf("Run: error = %#v", err)
			}
			if got := e.Message(); got != tc.wantMessage {
				t.Errorf("Message: %q, want %q", got, tc.wantMessage)
			}

			out := new(strings.Builder)
			fmsg.PrepareOutput("as", out)
			fmsg.PrintBaseError(err, "cannot run /usr/bin/cc:")
			if got := out.String(); got != "as: "+tc.wantMessage {
				t.Errorf("PrintBaseError: %q, want %q", got, "as: "+tc.wantMessage)
			}
		})
	}
}

func TestExecFailed(t *testing.T) {
	forkExec := func(err error) error {
		return &os.PathError{Op: "fork/exec", Path: "/usr/bin/as", Err: err}
	}

	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"not found", &exec.Error{Name: "as", Err: exec.ErrNotFound}, true},
		{"not found wrapped", fmt.Errorf("lookup: %w", &exec.Error{Name: "as", Err: exec.ErrNotFound}), true},
		{"dot", &exec.Error{Name: "as", Err: exec.ErrDot}, true},

		{"ENOENT", forkExec(syscall.ENOENT), true},
		{"EACCES", forkExec(syscall.EACCES), true},
		{"ENOEXEC", forkExec(syscall.ENOEXEC), true},
		{"EINVAL", forkExec(syscall.EINVAL), true},
		{"EIO", forkExec(syscall.EIO), true},
		{"EMFILE", forkExec(syscall.EMFILE), true},
		{"ENFILE", forkExec(syscall.ENFILE), true},

		{"EAGAIN", forkExec(syscall.EAGAIN), false},
		{"ENOMEM", forkExec(syscall.ENOMEM), false},
		{"ENOSYS", forkExec(syscall.ENOSYS), false},
		{"ENOSPC", forkExec(syscall.ENOSPC), false},

		{"not errno", forkExec(errors.New("unexpected")), false},
		{"pipe", os.NewSyscallError("pipe2", syscall.EMFILE), false},
		{"open", &os.PathError{Op: "open", Path: "/dev/null", Err: syscall.ENOENT}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := launch.ExecFailed(tc.err); got != tc.want {
				t.Errorf("execFailed: %v, want %v", got, tc.want)
			}
		})
	}
}
