package command

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

type node struct {
	name, usage string

	out io.Writer
	f   HandlerFunc
	set *flag.FlagSet
	// flags formatted for help output
	suffix strings.Builder
}

func newNode(output io.Writer, name, usage string) *node {
	n := &node{
		name: name, usage: usage,
		out: output,
		set: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	n.set.SetOutput(output)
	return n
}

func (n *node) Flag(p any, name string, value FlagDefiner, usage string) Node {
	value.Define(&n.suffix, n.set, p, name, usage)
	return n
}

type root struct {
	*node
	children []*node

	logf  LogFunc
	early func() error
}

func (r *root) Command(name, usage string, f HandlerFunc) Command {
	r.NewCommand(name, usage, f)
	return r
}

func (r *root) NewCommand(name, usage string, f HandlerFunc) Node {
	if f == nil {
		panic("invalid handler")
	}
	if name == "" || usage == "" {
		panic("invalid subcommand")
	}
	for _, c := range r.children {
		if c.name == name {
			panic("attempted to initialise subcommand with non-unique name")
		}
	}

	s := newNode(r.out, name, usage)
	s.f = f
	s.set.Usage = func() {
		_, _ = fmt.Fprintf(s.out, "\nUsage:\t%s %s [-h | --help]%s [ARGS]\n", r.name, s.name, &s.suffix)
		if s.suffix.Len() > 0 {
			_, _ = fmt.Fprintln(s.out, "\nFlags:")
			s.set.PrintDefaults()
		}
		_, _ = fmt.Fprintln(s.out)
	}
	r.children = append(r.children, s)
	return s
}

func (r *root) Flag(p any, name string, value FlagDefiner, usage string) Command {
	r.node.Flag(p, name, value, usage)
	return r
}
