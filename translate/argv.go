package translate

import (
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/kballard/go-shellquote"
)

// Argv is an argument vector, its first element naming the program to run.
type Argv []string

// NullError is returned by [Argv.Check] for an element containing the null character.
type NullError struct {
	// Index of the offending element.
	Index int
	// Arg is the offending element.
	Arg string
}

func (e *NullError) Error() string {
	return fmt.Sprintf("argument %d %q contains null character", e.Index, e.Arg)
}
func (e *NullError) Is(target error) bool { return target == syscall.EINVAL }

// Check returns a non-nil error if any element cannot be passed to execve.
func (a Argv) Check() error {
	for i, arg := range a {
		if strings.IndexByte(arg, 0) != -1 {
			return &NullError{i, arg}
		}
	}
	return nil
}

// WriteTo writes every element followed by the null character.
func (a Argv) WriteTo(w io.Writer) (int64, error) {
	nt := 0
	for _, arg := range a {
		n, err := io.WriteString(w, arg+"\x00")
		nt += n

		if err != nil {
			return int64(nt), err
		}
	}
	return int64(nt), nil
}

// String returns a shell-quoted representation of a.
func (a Argv) String() string { return shellquote.Join(a...) }
