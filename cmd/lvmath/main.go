// SPDX-License-Identifier: MIT

// Command lvmath encodes, decodes and transforms lvmath values from the
// shell. Run "lvmath --help" for the command list.
package main

import (
	"os"

	"github.com/katalvlaran/lvmath/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
