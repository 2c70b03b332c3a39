package internal

const compPoison = "INVALIDINVALIDINVALIDINVALIDINVALID"

// Set by the linker.
var (
	version = compPoison

	asPath    = compPoison
	clangPath = compPoison
	ccPath    = compPoison
)

// checkComp validates string value set at compile time.
func checkComp(s string) (string, bool) { return s, s != compPoison && s != "" }

// Version returns the version string set by the linker, or "impure".
func Version() string {
	if v, ok := checkComp(version); ok {
		return v
	}
	return "impure"
}
