// Package main is the entry point for validate_usd, which validates
// a USD file as an asset or a scene.
package main

import (
	"os"

	"github.com/thoreinstein/usdcheck/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.USDTool))
}
