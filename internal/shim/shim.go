// Package shim implements the entry point shared by the as front ends.
package shim

import (
	"log"
	"os"
	"path"
	"runtime"

	"git.gensokyo.uk/toolchain/gas/internal"
	"git.gensokyo.uk/toolchain/gas/internal/check"
	"git.gensokyo.uk/toolchain/gas/internal/fmsg"
	"git.gensokyo.uk/toolchain/gas/launch"
	"git.gensokyo.uk/toolchain/gas/translate"
)

// Target returns the pathname of the tool delegated to under p.
func Target(p translate.Policy) *check.Absolute {
	switch p {
	case translate.Native:
		return internal.MustAsPath()
	case translate.Clang:
		return internal.MustClangPath()
	case translate.CC:
		return internal.MustCCPath()
	default:
		log.Fatalf("invalid %s", p)
		return nil // unreachable
	}
}

// Run translates args under p and runs target with the resulting argument vector.
func Run(l *launch.Launcher, p translate.Policy, target *check.Absolute, args []string) (int, error) {
	argv := p.Translate(target.String(), args)
	fmsg.Verbosef("%s: %s", p, argv)
	return l.Run(argv)
}

// Main runs the tool delegated to under p with the arguments of the current process
// and exits with its status. It never returns.
func Main(name string, p translate.Policy) {
	fmsg.Prepare(name)

	target := Target(p)
	code, err := Run(launch.Std, p, target, os.Args[1:])
	if err != nil {
		fmsg.PrintBaseError(err, "cannot run "+target.String()+":")
		os.Exit(launch.ExitFailure)
	}
	os.Exit(code)
}

// Lookup returns the [translate.Policy] of a front end invoked as argv0.
func Lookup(argv0 string) (translate.Policy, bool) {
	switch path.Base(argv0) {
	case "as":
		return translate.Detect(runtime.GOOS), true
	case "as-native", "as-darwin":
		return translate.Native, true
	case "as-clang":
		return translate.Clang, true
	case "as-cc":
		return translate.CC, true
	default:
		return 0, false
	}
}

// TryArgv0 calls [Main] if the current process was invoked as one of the front ends.
func TryArgv0() {
	if len(os.Args) == 0 {
		return
	}
	if p, ok := Lookup(os.Args[0]); ok {
		Main(path.Base(os.Args[0]), p)
	}
}
