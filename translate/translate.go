package translate

import "strings"

const (
	// DeploymentVersionFlag suppresses the deployment version mismatch warning
	// emitted by the native assembler of newer Apple hosts.
	DeploymentVersionFlag = "-Wno-overriding-deployment-version"

	// OutputFlag specifies the output pathname, matched by prefix.
	OutputFlag = "-o"
	// DefaultOutput is the output pathname used when none is specified.
	DefaultOutput = "a.out"
	// Stdin is the operand naming standard input.
	Stdin = "-"
)

// driverPrefix makes a compiler driver compile assembly source without linking.
var driverPrefix = [...]string{"-c", "-x", "assembler"}

// Translate returns the argument vector running target for an as invocation.
// Slice args holds the arguments of the invocation excluding the program name
// and is never modified.
func (p Policy) Translate(target string, args []string) Argv {
	switch p {
	case Native:
		return passthrough(target, args)
	case Clang:
		return driver(target, args, false)
	case CC:
		return driver(target, args, true)
	default:
		panic("invalid " + p.String())
	}
}

func passthrough(target string, args []string) Argv {
	av := make(Argv, 0, len(args)+2)
	av = append(av, target)
	av = append(av, args...)
	return append(av, DeploymentVersionFlag)
}

// driver translates args for a compiler driver, appending a default output
// and the stdin operand when args do not specify them.
//
// An argument is an input when it is [Stdin] or does not look like a flag.
// With exemptOperand set, the argument following a bare [OutputFlag] is the
// output pathname and never counts as an input. The clang policy does not set
// exemptOperand and counts that argument as an input, so "-o bar.o" alone
// suppresses the stdin operand. The clang policy may set exemptOperand once
// its grammar is confirmed to match cc.
func driver(target string, args []string, exemptOperand bool) Argv {
	av := make(Argv, 0, 1+len(driverPrefix)+len(args)+3)
	av = append(av, target)
	av = append(av, driverPrefix[:]...)

	var haveInput, haveOutput, operand bool
	for _, arg := range args {
		av = append(av, arg)

		if operand {
			operand = false
			continue
		}

		if strings.HasPrefix(arg, OutputFlag) {
			haveOutput = true
			operand = exemptOperand && arg == OutputFlag
			continue
		}

		if strings.HasPrefix(arg, "-") {
			if arg == Stdin {
				haveInput = true
			}
			continue
		}

		haveInput = true
	}

	if !haveOutput {
		av = append(av, OutputFlag, DefaultOutput)
	}
	if !haveInput {
		av = append(av, Stdin)
	}
	return av
}
