// The as command runs the assembler of the host with the arguments of a GNU as invocation.
//
// On Apple hosts the native assembler is run directly, elsewhere clang is run in assembler mode.
package main

import (
	"runtime"

	"git.gensokyo.uk/toolchain/gas/internal/shim"
	"git.gensokyo.uk/toolchain/gas/translate"
)

func main() { shim.Main("as", translate.Detect(runtime.GOOS)) }
