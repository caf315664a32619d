// Command ecotrace is the carbon footprint quiz engine CLI.
package main

import (
	"os"

	"github.com/greenloop/ecotrace/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
