package internal

import (
	"log"

	"git.gensokyo.uk/toolchain/gas/internal/check"
)

// Pathnames of the delegated tools used when the linker did not set them.
const (
	DefaultAsPath    = "/usr/bin/as"
	DefaultClangPath = "/usr/bin/clang"
	DefaultCCPath    = "/usr/bin/cc"
)

// MustAsPath returns the [check.Absolute] path to the native assembler.
func MustAsPath() *check.Absolute { return mustCheckPath(log.Fatal, "as", asPath, DefaultAsPath) }

// MustClangPath returns the [check.Absolute] path to clang.
func MustClangPath() *check.Absolute {
	return mustCheckPath(log.Fatal, "clang", clangPath, DefaultClangPath)
}

// MustCCPath returns the [check.Absolute] path to the generic compiler driver.
func MustCCPath() *check.Absolute { return mustCheckPath(log.Fatal, "cc", ccPath, DefaultCCPath) }

// mustCheckPath resolves a linker-set pathname against its fallback, then [check.NewAbs],
// calling fatal if the linker set a pathname that is not absolute.
func mustCheckPath(fatal func(v ...any), name, pathname, fallback string) *check.Absolute {
	if p, ok := checkComp(pathname); ok {
		pathname = p
	} else {
		pathname = fallback
	}

	if a, err := check.NewAbs(pathname); err != nil {
		fatal("invalid " + name + " pathname: " + err.Error() + ", this program is compiled incorrectly")
		return nil // unreachable
	} else {
		return a
	}
}
