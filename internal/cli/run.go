package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/usdcheck/internal/check"
	"github.com/thoreinstein/usdcheck/internal/config"
	"github.com/thoreinstein/usdcheck/internal/errors"
	"github.com/thoreinstein/usdcheck/internal/logging"
	"github.com/thoreinstein/usdcheck/internal/usda"
	"github.com/thoreinstein/usdcheck/internal/validator"
)

// run validates path with the tool's fixed mode, or classifies it first.
func run(c *cobra.Command, tool Tool, cfg *config.Config, path string) error {
	ctx := c.Context()
	logger := logging.FromContext(ctx)

	engine := usda.NewEngine(
		usda.WithLogger(logger),
		usda.WithSearchPaths(cfg.Resolver.SearchPaths),
		usda.WithMaxFileSize(cfg.Engine.MaxFileSize),
	)
	v := check.NewValidator(engine,
		check.WithOutput(c.OutOrStdout()),
		check.WithAssetLayerMarkers(cfg.Scene.AssetLayerMarkers),
	)

	var result *validator.Result
	if tool.Mode != nil {
		result = v.Validate(ctx, path, *tool.Mode)
	} else {
		classifier := check.NewClassifier(engine,
			check.WithSceneSublayerThreshold(cfg.Classifier.SceneSublayerThreshold),
			check.WithSceneNameMarkers(cfg.Classifier.SceneNameMarkers),
		)
		mode, stage, err := classifier.Classify(ctx, path)
		if err != nil {
			logger.Debug("classification failed", "error", err)
			fmt.Fprintln(c.OutOrStdout(), color.RedString("ERROR: Cannot open USD file: %s", path))
			return errors.NewReportedError(err)
		}
		result = v.ValidateStage(ctx, path, stage, mode)
	}

	if !result.Passed() {
		return errors.NewReportedError(errors.ErrValidationFailed)
	}
	return nil
}

// Execute runs the command for tool with the process arguments.
func Execute(tool Tool) error {
	return errors.Wrap(NewCommand(tool).Execute(), "executing "+tool.Name)
}

// Main runs tool and returns the process exit code. Errors that were not
// already reported are printed to stderr with their suggestion.
func Main(tool Tool) int {
	err := Execute(tool)
	printError(os.Stderr, err)
	return errors.ExitCode(err)
}

func printError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Reported {
			return
		}
		fmt.Fprintln(w, color.RedString("Error: %s", exitErr.Error()))
		if exitErr.Suggestion != "" {
			fmt.Fprintf(w, "Suggestion: %s\n", exitErr.Suggestion)
		}
		return
	}
	fmt.Fprintln(w, color.RedString("Error: %s", err.Error()))
}
