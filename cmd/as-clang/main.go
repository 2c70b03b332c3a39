// The as-clang command is a GNU as compatible front end for clang,
// for systems shipping clang but not GNU as.
//
// Omitting the input file reads from standard input, and omitting the output file writes a.out.
package main

import (
	"git.gensokyo.uk/toolchain/gas/internal/shim"
	"git.gensokyo.uk/toolchain/gas/translate"
)

func main() { shim.Main("as", translate.Clang) }
