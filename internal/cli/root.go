// Package cli builds the cobra commands behind the validation binaries.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/usdcheck/cmd"
	"github.com/thoreinstein/usdcheck/internal/config"
	"github.com/thoreinstein/usdcheck/internal/errors"
	"github.com/thoreinstein/usdcheck/internal/logging"
)

// debugEnv raises verbosity when no -v flag is given: "1" or "true" for
// debug, "2" for trace.
const debugEnv = "USDCHECK_DEBUG"

// options holds the persistent flag values of one command.
type options struct {
	verbosity  int
	quiet      bool
	logFormat  string
	logFile    string
	configFile string
	noColor    bool
	dumpConfig bool

	cfg *config.Config
}

// NewCommand builds the root command for tool.
func NewCommand(tool Tool) *cobra.Command {
	opts := &options{}

	c := &cobra.Command{
		Use:     tool.Name + " <" + tool.ArgName + ">",
		Short:   tool.Short,
		Long:    tool.Long,
		Example: tool.Example,
		Args:    usageArgs(tool, opts),
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			if opts.noColor {
				color.NoColor = true
			}
			if err := setupLogging(c, opts); err != nil {
				return err
			}
			return loadConfig(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			if opts.dumpConfig {
				return dumpConfig(c, opts.cfg)
			}
			return run(c, tool, opts.cfg, args[0])
		},
	}

	f := c.PersistentFlags()
	f.CountVarP(&opts.verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	f.BoolVarP(&opts.quiet, "quiet", "q", false,
		"only log errors")
	f.StringVar(&opts.logFormat, "log-format", "text",
		"log format: text, json")
	f.StringVar(&opts.logFile, "log-file", "",
		"write logs to file in JSON format")
	f.StringVar(&opts.configFile, "config", "",
		"config file (default: ./usdcheck.yaml, then the user config directory)")
	f.BoolVar(&opts.noColor, "no-color", false,
		"disable colored output")
	f.BoolVar(&opts.dumpConfig, "dump-config", false,
		"print the effective configuration as YAML and exit")

	c.Version = cmd.Version
	c.SetVersionTemplate(fmt.Sprintf("%s version {{.Version}}\n  commit: %s\n  built:  %s\n",
		tool.Name, cmd.Commit, cmd.Date))

	// Errors are rendered by Main
	c.SilenceErrors = true
	c.SilenceUsage = true

	return c
}

// usageArgs requires exactly one path unless --dump-config is set. On
// failure it prints the usage line to stdout.
func usageArgs(tool Tool, opts *options) cobra.PositionalArgs {
	return func(c *cobra.Command, args []string) error {
		if opts.dumpConfig || len(args) == 1 {
			return nil
		}
		out := c.OutOrStdout()
		fmt.Fprintf(out, "Usage: %s <%s>\n", tool.Name, tool.ArgName)
		for _, line := range tool.Hint {
			fmt.Fprintln(out, line)
		}
		return errors.NewReportedError(errors.Wrapf(errors.ErrUsage, "expected 1 argument, got %d", len(args)))
	}
}

// setupLogging configures the default logger based on verbosity flags and
// stores it in the command context.
func setupLogging(c *cobra.Command, opts *options) error {
	if opts.quiet && opts.verbosity > 0 {
		return errors.NewUserError(errors.ErrUsage, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if opts.quiet {
		level = slog.LevelError
	} else {
		v := opts.verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	var primary slog.Handler
	switch logging.Format(opts.logFormat) {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(c.ErrOrStderr(), handlerOpts)
	case logging.FormatText:
		primary = logging.NewHandler(c.ErrOrStderr(), handlerOpts)
	default:
		err := errors.Newf("unknown log format %q", opts.logFormat)
		return errors.NewUserError(errors.Mark(err, errors.ErrUsage), "Use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{primary}

	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewSystemError(errors.Wrap(err, "opening log file"), "Check that the --log-file directory exists and is writable")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	logger := slog.New(logging.NewTee(handlers...))
	slog.SetDefault(logger)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(logging.NewContext(ctx, logger))

	return nil
}

func loadConfig(c *cobra.Command, opts *options) error {
	config.Init()
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return errors.NewConfigError(err)
	}
	opts.cfg = cfg

	logging.FromContext(c.Context()).Debug("configuration loaded",
		"file", configSource(opts.configFile),
		"scene_sublayer_threshold", cfg.Classifier.SceneSublayerThreshold,
		"search_paths", len(cfg.Resolver.SearchPaths))
	return nil
}

func configSource(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if used := config.FileUsed(); used != "" {
		return used
	}
	return "defaults"
}

func dumpConfig(c *cobra.Command, cfg *config.Config) error {
	data, err := cfg.YAML()
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	_, err = c.OutOrStdout().Write(data)
	return errors.Wrap(err, "writing config")
}
