// The gas command translates GNU as invocations for the assembler available on the host.
//
// When invoked as as, as-native, as-darwin, as-clang or as-cc, gas behaves as the
// corresponding front end and passes every argument to the delegated tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"git.gensokyo.uk/toolchain/gas/command"
	"git.gensokyo.uk/toolchain/gas/internal"
	"git.gensokyo.uk/toolchain/gas/internal/check"
	"git.gensokyo.uk/toolchain/gas/internal/fmsg"
	"git.gensokyo.uk/toolchain/gas/internal/shim"
	"git.gensokyo.uk/toolchain/gas/launch"
	"git.gensokyo.uk/toolchain/gas/translate"
)

func main() {
	// multi-call front end, never returns if matched
	shim.TryArgv0()

	fmsg.Prepare("gas")
	buildCommand(os.Stderr, os.Stdout).MustParse(os.Args[1:], func(err error) {
		fmsg.PrintBaseError(err, "command returned")
	})
}

func buildCommand(out, stdout io.Writer) command.Command {
	var flagVerbose bool
	c := command.New(out, log.Printf, "gas", func() error {
		fmsg.Store(flagVerbose)
		return nil
	}).
		Flag(&flagVerbose, "v", command.BoolFlag(false), "Print debug messages to the console")

	c.Command("run", "Translate arguments for a policy and run the delegated tool", func(args []string) error {
		p, asArgs, err := parseArgs(args)
		if err != nil {
			return err
		}

		code, err := shim.Run(launch.Std, p, shim.Target(p), asArgs)
		if err != nil {
			return err
		}
		os.Exit(code)
		return nil // unreachable
	})

	{
		var (
			flagNull   bool
			flagTarget string
		)
		c.NewCommand("print", "Print the argument vector translated for a policy", func(args []string) error {
			p, asArgs, err := parseArgs(args)
			if err != nil {
				return err
			}

			target := shim.Target(p)
			if flagTarget != "" {
				if target, err = check.NewAbs(flagTarget); err != nil {
					return fmsg.WrapErrSuffix(err, "invalid target:")
				}
			}

			argv := p.Translate(target.String(), asArgs)
			if flagNull {
				_, err = argv.WriteTo(stdout)
			} else {
				_, err = fmt.Fprintln(stdout, argv)
			}
			return err
		}).
			Flag(&flagNull, "0", command.BoolFlag(false), "Terminate each argument with the null character").
			Flag(&flagTarget, "target", command.StringFlag(""), "Absolute pathname of the delegated tool, overriding the default of the policy")
	}

	c.Command("detect", "Print the policy selected for this host and its delegated tool", func([]string) error {
		p := translate.Detect(runtime.GOOS)
		_, err := fmt.Fprintln(stdout, p, shim.Target(p))
		return err
	})

	c.Command("version", "Show gas version", func([]string) error {
		_, err := fmt.Fprintln(stdout, internal.Version())
		return err
	})

	return c
}

// errNoPolicy is returned by parseArgs for a zero length argument list.
var errNoPolicy = errors.New("policy not specified")

// parseArgs returns the policy named by the first argument and the as arguments following it,
// with a leading "--" removed.
func parseArgs(args []string) (translate.Policy, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmsg.WrapErr(errNoPolicy, "a policy must be specified, one of native, clang or cc")
	}

	p, err := translate.ParsePolicy(args[0])
	if err != nil {
		return 0, nil, fmsg.WrapErrSuffix(err, "cannot select policy:")
	}

	args = args[1:]
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	return p, args, nil
}
