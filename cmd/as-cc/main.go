// The as-cc command is a GNU as compatible front end for the cc compiler driver.
package main

import (
	"git.gensokyo.uk/toolchain/gas/internal/shim"
	"git.gensokyo.uk/toolchain/gas/translate"
)

func main() { shim.Main("as", translate.CC) }
