package command

import (
	"errors"
	"log"
	"os"
)

var (
	ErrHelp    = errors.New("help requested")
	ErrNoMatch = errors.New("did not match any subcommand")
)

func (r *root) Parse(arguments []string) error {
	if r.set.Parsed() {
		panic("invalid set state")
	}
	if err := r.set.Parse(arguments); err != nil {
		return FlagError{err}
	}
	if r.early != nil {
		if err := r.early(); err != nil {
			return err
		}
	}

	args := r.set.Args()
	if len(args) == 0 {
		return r.writeHelp()
	}
	for _, c := range r.children {
		if c.name != args[0] {
			continue
		}
		if err := c.set.Parse(args[1:]); err != nil {
			return FlagError{err}
		}
		return c.f(c.set.Args())
	}

	r.printf("%q is not a valid command", args[0])
	return ErrNoMatch
}

func (r *root) MustParse(arguments []string, handleError func(error)) {
	switch err := r.Parse(arguments); err {
	case nil:
		return
	case ErrHelp:
		os.Exit(0)
	case ErrNoMatch:
		os.Exit(1)
	default:
		var flagError FlagError
		if !errors.As(err, &flagError) { // returned by HandlerFunc
			if handleError != nil {
				handleError(err)
			}
			os.Exit(1)
		}
		if flagError.Success() {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func (r *root) printf(format string, a ...any) {
	if r.logf == nil {
		log.Printf(format, a...)
	} else {
		r.logf(format, a...)
	}
}
