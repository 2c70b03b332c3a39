// The as-darwin command runs the native assembler of an Apple host with the arguments of a GNU as invocation,
// suppressing the deployment version mismatch warning.
package main

import (
	"git.gensokyo.uk/toolchain/gas/internal/shim"
	"git.gensokyo.uk/toolchain/gas/translate"
)

func main() { shim.Main("as", translate.Native) }
