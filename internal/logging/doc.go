// Package logging provides structured logging for the usdcheck tools using slog.
//
// Findings and progress lines are the tools' product and go to stdout; log
// records are diagnostics about the engine (layers opened, sublayers skipped,
// references grafted) and go to stderr, optionally mirrored to a JSON file.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	ctx := logging.NewContext(context.Background(), logger)
//	logging.FromContext(ctx).Debug("opened layer", "path", path)
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
