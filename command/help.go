package command

import (
	"fmt"
	"text/tabwriter"
)

func (r *root) PrintHelp() { _ = r.writeHelp() }

func (r *root) writeHelp() error {
	if _, err := fmt.Fprintf(r.out,
		"\nUsage:\t%s [-h | --help]%s COMMAND [OPTIONS]\n",
		r.name, &r.suffix,
	); err != nil {
		return err
	}
	if len(r.children) > 0 {
		if _, err := fmt.Fprint(r.out, "\nCommands:\n"); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(r.out, 0, 1, 4, ' ', 0)
	for _, c := range r.children {
		if _, err := fmt.Fprintf(tw, "\t%s\t%s\n", c.name, c.usage); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := r.out.Write([]byte{'\n'})
	if err == nil {
		err = ErrHelp
	}
	return err
}
