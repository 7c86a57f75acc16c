// Package validator holds the finding model shared by the asset and scene
// rule sets and renders it for the terminal.
//
// # Core Concepts
//
//   - [Severity]: Error findings fail validation, Warning findings never do.
//   - [Finding]: one (severity, message) pair.
//   - [Result]: findings in discovery order; [Result.Passed] is derived from
//     them on every call.
//   - [Reporter]: prints progress lines, the ERRORS and WARNINGS sections and
//     the one-line summary.
//
// # Basic Usage
//
//	result := &validator.Result{}
//	if !prim.IsValid() {
//		result.AddError("Invalid prim: " + prim.Path())
//	}
//	reporter := validator.NewReporter(os.Stdout, "Asset")
//	reporter.Report(result)
//	if !result.Passed() {
//		// exit 1
//	}
package validator
