// Package main is the entry point for validate_scene, which validates
// a USD scene root file.
package main

import (
	"os"

	"github.com/thoreinstein/usdcheck/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.SceneTool))
}
