// Package translate rewrites the arguments of a GNU as invocation for the assembler available on the host.
package translate

import (
	"fmt"
	"slices"
)

// Policy selects how an as invocation is translated.
type Policy uint8

const (
	// Native passes arguments through to the native assembler of the host.
	Native Policy = iota
	// Clang invokes clang in assembler mode.
	Clang
	// CC invokes a generic compiler driver in assembler mode.
	CC

	policyEnd
)

var policyNames = [...]string{
	Native: "native",
	Clang:  "clang",
	CC:     "cc",
}

func (p Policy) Valid() bool { return p < policyEnd }

func (p Policy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("policy(%d)", p)
	}
	return policyNames[p]
}

// PolicyError is returned by [ParsePolicy] for a name not corresponding to any [Policy].
type PolicyError string

func (e PolicyError) Error() string { return fmt.Sprintf("unknown policy %q", string(e)) }

// ParsePolicy returns the [Policy] named by name.
func ParsePolicy(name string) (Policy, error) {
	if i := slices.Index(policyNames[:], name); i >= 0 {
		return Policy(i), nil
	}
	return 0, PolicyError(name)
}

// Detect returns the [Policy] for a host running goos.
// Apple hosts ship their own assembler, others are assumed to ship clang.
func Detect(goos string) Policy {
	switch goos {
	case "darwin", "ios":
		return Native
	default:
		return Clang
	}
}
