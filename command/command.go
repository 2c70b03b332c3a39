// Package command implements subcommand parsing for the gas utility.
package command

import (
	"flag"
	"io"
	"strings"
)

type (
	// HandlerFunc is called with the remaining arguments of a matched subcommand.
	HandlerFunc = func(args []string) error

	// LogFunc is the function signature of a printf function.
	LogFunc = func(format string, a ...any)

	// FlagDefiner is a deferred flag definer value, usually encapsulating the default value.
	FlagDefiner interface {
		// Define defines the flag in set.
		Define(b *strings.Builder, set *flag.FlagSet, p any, name, usage string)
	}

	// Command is the toplevel command holding every subcommand.
	Command interface {
		// Command appends a subcommand.
		Command(name, usage string, f HandlerFunc) Command
		// NewCommand appends a subcommand and returns it for defining its own flags.
		NewCommand(name, usage string, f HandlerFunc) Node
		// Flag defines a flag parsed before the subcommand name.
		Flag(p any, name string, value FlagDefiner, usage string) Command

		// Parse parses arguments and calls the handler of the matching subcommand.
		Parse(arguments []string) error
		// MustParse calls Parse and exits on error, calling handleError with errors returned by handlers.
		MustParse(arguments []string, handleError func(error))
		// PrintHelp prints a help message to the configured writer.
		PrintHelp()
	}

	// Node is a subcommand.
	Node interface {
		// Flag defines a flag parsed after the subcommand name.
		Flag(p any, name string, value FlagDefiner, usage string) Node
	}
)

// New initialises a toplevel [Command]. Function early is called after toplevel flags are parsed.
func New(output io.Writer, logf LogFunc, name string, early func() error) Command {
	r := &root{node: newNode(output, name, ""), logf: logf, early: early}
	r.set.Usage = func() { _ = r.writeHelp() }
	return r
}
