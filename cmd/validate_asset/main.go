// Package main is the entry point for validate_asset, which validates
// a USD asset file.
package main

import (
	"os"

	"github.com/thoreinstein/usdcheck/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.AssetTool))
}
