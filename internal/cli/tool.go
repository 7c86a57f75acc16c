package cli

import (
	"github.com/thoreinstein/usdcheck/internal/check"
)

// Tool describes one validation entry point.
type Tool struct {
	// Name is the binary name shown in usage and version output.
	Name string
	// ArgName names the positional argument in the usage line.
	ArgName string
	Short   string
	Long    string
	Example string
	// Hint lines are printed after the usage line.
	Hint []string
	// Mode fixes the rule set. Nil runs the classifier first.
	Mode *check.Mode
}

func modePtr(m check.Mode) *check.Mode {
	return &m
}

// AssetTool validates a file with the asset rules.
var AssetTool = Tool{
	Name:    "validate_asset",
	ArgName: "path_to_usd_file",
	Short:   "Validate a USD asset file",
	Long: `validate_asset opens a USD asset, checks every prim for validity and its
references for portability, checks that sublayers exist and that a default
prim is set.

Unresolved references and missing sublayers are warnings. Invalid prims are
errors. The exit code is 1 when any error is found.`,
	Example: `  validate_asset 010_ASS_USD/Chair.usda
  validate_asset -v --config studio.yaml Chair.usda`,
	Mode: modePtr(check.ModeAsset),
}

// SceneTool validates a file with the scene rules.
var SceneTool = Tool{
	Name:    "validate_scene",
	ArgName: "path_to_root_usd_file",
	Short:   "Validate a USD scene root file",
	Long: `validate_scene opens a scene root file, checks that every sublayer resolves,
exists and opens, that the asset import layer is the last sublayer, that
a default prim is set and that every composed prim is valid.

Missing or unresolvable sublayers and invalid prims are errors. The exit code
is 1 when any error is found.`,
	Example: `  validate_scene GoodStart_ROOT.usda`,
	Mode:    modePtr(check.ModeScene),
}

// USDTool classifies a file as asset or scene and validates it accordingly.
var USDTool = Tool{
	Name:    "validate_usd",
	ArgName: "path_to_usd_file",
	Short:   "Validate a USD file as an asset or a scene",
	Long: `validate_usd decides whether a file is an asset or a scene and applies the
matching rules. A file with more than two sublayers, or whose name contains
"root", is validated as a scene by default. Everything else is validated
as an asset.

The classification is a heuristic. Use validate_asset or validate_scene to
choose the rules explicitly.`,
	Example: `  validate_usd GoodStart_ROOT.usda
  validate_usd 010_ASS_USD/Chair.usda`,
	Hint: []string{
		"",
		"This tool auto-detects whether to validate as asset or scene.",
		"For explicit control, use:",
		"  validate_asset <asset_file>",
		"  validate_scene <scene_file>",
	},
}
