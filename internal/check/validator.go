package check

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/usdcheck/internal/logging"
	"github.com/thoreinstein/usdcheck/internal/scene"
	"github.com/thoreinstein/usdcheck/internal/validator"
	"github.com/thoreinstein/usdcheck/pkg/fileutil"
)

// DefaultAssetLayerMarkers identify an asset import layer case-sensitively.
var DefaultAssetLayerMarkers = []string{"AssetImport"}

// Validator applies the asset or scene rule set to a file.
type Validator struct {
	engine            scene.Engine
	out               io.Writer
	assetLayerMarkers []string
}

// Option configures a Validator.
type Option func(*Validator)

// WithOutput sets where progress lines and the report are written.
func WithOutput(w io.Writer) Option {
	return func(v *Validator) {
		if w != nil {
			v.out = w
		}
	}
}

// WithAssetLayerMarkers sets the case-sensitive substrings that identify an
// asset import layer in the layer-ordering rule. "asset" is always matched
// case-insensitively in addition.
func WithAssetLayerMarkers(markers []string) Option {
	return func(v *Validator) {
		if len(markers) > 0 {
			v.assetLayerMarkers = markers
		}
	}
}

// NewValidator creates a Validator that opens files through engine.
func NewValidator(engine scene.Engine, opts ...Option) *Validator {
	v := &Validator{
		engine:            engine,
		out:               os.Stdout,
		assetLayerMarkers: DefaultAssetLayerMarkers,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// sublayerEntry is one authored sublayer and where it resolved to.
type sublayerEntry struct {
	RawPath string
	// ResolvedPath is empty when the path could not be resolved.
	ResolvedPath string
}

// Validate opens path and applies the rules for mode. The findings are
// written to the Validator's output and returned.
func (v *Validator) Validate(ctx context.Context, path string, mode Mode) *validator.Result {
	return v.validate(ctx, path, mode, nil)
}

// ValidateStage applies the rules for mode to a stage that was already
// opened from path.
func (v *Validator) ValidateStage(ctx context.Context, path string, stage scene.Stage, mode Mode) *validator.Result {
	return v.validate(ctx, path, mode, stage)
}

func (v *Validator) validate(ctx context.Context, path string, mode Mode, stage scene.Stage) *validator.Result {
	logger := logging.FromContext(ctx)
	rep := validator.NewReporter(v.out, mode.Subject())

	abs := absPath(path)
	if !fileutil.Exists(abs) {
		result := validator.NewFatal(fmt.Sprintf("%s not found: %s", mode.fileNoun(), abs))
		rep.Report(result)
		return result
	}

	rep.Progressf("Validating %s: %s", mode, abs)

	if stage == nil {
		var err error
		stage, err = v.engine.OpenStage(abs)
		if err != nil || stage == nil {
			logger.Debug("engine rejected file", "path", abs, "error", err)
			result := validator.NewFatal(fmt.Sprintf("Failed to open %s: %s", mode.openNoun(), abs))
			rep.Report(result)
			return result
		}
	}

	logger.Info("validating", "path", abs, "mode", mode.String())

	result := &validator.Result{}
	switch mode {
	case ModeScene:
		v.runScene(ctx, stage, result, rep)
	default:
		v.runAsset(ctx, stage, result, rep)
	}

	rep.Report(result)
	logger.Info("validation finished",
		"path", abs,
		"errors", len(result.Errors()),
		"warnings", len(result.Warnings()))
	return result
}

func (v *Validator) runAsset(ctx context.Context, stage scene.Stage, result *validator.Result, rep *validator.Reporter) {
	root := stage.RootLayer()
	if root == nil {
		result.Abort("No root layer found")
		return
	}

	prims := stage.Traverse()
	for _, prim := range prims {
		if !prim.IsValid() {
			result.AddError("Invalid prim: " + prim.Path())
			continue
		}
		v.checkReferences(ctx, root, prim, result)
	}
	rep.Progressf("Found %d prims", len(prims))

	entries := readSublayers(root)
	if len(entries) > 0 {
		rep.Progressf("Found %d sublayers", len(entries))
	}
	v.checkSublayers(ctx, entries, ModeAsset, result)

	checkDefaultPrim(stage, ModeAsset, result)
}

func (v *Validator) runScene(ctx context.Context, stage scene.Stage, result *validator.Result, rep *validator.Reporter) {
	root := stage.RootLayer()
	if root == nil {
		result.Abort("No root layer found")
		return
	}

	entries := readSublayers(root)
	rep.Progressf("\nFound %d sublayers:", len(entries))
	for i, e := range entries {
		rep.Progressf("  %d. %s", i+1, e.RawPath)
	}
	v.checkSublayers(ctx, entries, ModeScene, result)

	if len(entries) > 0 {
		last := entries[len(entries)-1].RawPath
		if v.isAssetImportLayer(last) {
			rep.Confirmf("Asset import layer correctly positioned at bottom")
		} else {
			result.AddWarning("Consider placing asset import layer at bottom of subLayers array")
		}
	}

	checkDefaultPrim(stage, ModeScene, result)

	prims := stage.Traverse()
	invalid := 0
	for _, prim := range prims {
		if !prim.IsValid() {
			invalid++
			result.AddError("Invalid prim: " + prim.Path())
		}
	}
	rep.Progressf("\nScene contains %d prims", len(prims))
	if invalid > 0 {
		rep.Progressf("  ⚠ %d invalid prim(s) found", invalid)
	}
}

func readSublayers(root scene.Layer) []sublayerEntry {
	paths := root.SubLayerPaths()
	entries := make([]sublayerEntry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, sublayerEntry{RawPath: p, ResolvedPath: root.ResolvePath(p)})
	}
	return entries
}

func (v *Validator) checkSublayers(ctx context.Context, entries []sublayerEntry, mode Mode, result *validator.Result) {
	logger := logging.FromContext(ctx)
	severity := mode.sublayerSeverity()

	for _, e := range entries {
		switch {
		case e.ResolvedPath == "":
			result.Add(severity, "Cannot resolve sublayer: "+e.RawPath)
		case !fileutil.Exists(e.ResolvedPath):
			result.Add(severity, "Missing sublayer file: "+e.ResolvedPath)
		case mode == ModeScene:
			if _, err := v.engine.OpenLayer(e.ResolvedPath); err != nil {
				logger.Debug("sublayer open failed", "path", e.ResolvedPath, "error", err)
				result.AddWarning("Cannot open sublayer: " + e.ResolvedPath)
				continue
			}
			if _, err := v.engine.OpenStage(e.ResolvedPath); err != nil {
				logger.Debug("sublayer stage open failed", "path", e.ResolvedPath, "error", err)
				result.AddWarning("Sublayer opens but stage validation failed: " + e.ResolvedPath)
			}
		}
	}
}

func (v *Validator) checkReferences(ctx context.Context, root scene.Layer, prim scene.Prim, result *validator.Result) {
	if !prim.HasAuthoredReferences() {
		return
	}
	logger := logging.FromContext(ctx)

	for _, ref := range prim.References() {
		p := ref.AssetPath
		if p == "" {
			continue
		}

		if isAbsoluteReference(p) {
			result.AddWarning(fmt.Sprintf(
				"Absolute file path detected in reference: '%s' at prim '%s'. "+
					"Consider using relative paths (e.g., @../010_ASS_USD/asset.usd@) for portability.",
				p, prim.Path()))
		}

		if _, err := v.engine.OpenLayer(p); err == nil || strings.HasPrefix(p, "@") {
			continue
		}
		resolved := root.ResolvePath(p)
		if resolved == "" || !fileutil.Exists(resolved) {
			logger.Debug("reference not found", "prim", prim.Path(), "asset", p, "resolved", resolved)
			result.AddWarning(fmt.Sprintf("Potential missing reference: %s at %s", p, prim.Path()))
		}
	}
}

func checkDefaultPrim(stage scene.Stage, mode Mode, result *validator.Result) {
	if stage.DefaultPrim() == nil {
		result.AddWarning(fmt.Sprintf("No default prim set (recommended for %s files)", mode))
	}
}

// isAbsoluteReference reports whether an authored reference path is a
// filesystem-absolute path. Asset-delimited and ./ or ../ paths never are.
func isAbsoluteReference(p string) bool {
	if strings.HasPrefix(p, "@") || strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") {
		return false
	}
	return filepath.IsAbs(p) || strings.HasPrefix(p, "/") || (len(p) > 1 && p[1] == ':')
}

func (v *Validator) isAssetImportLayer(p string) bool {
	if strings.Contains(strings.ToLower(p), "asset") {
		return true
	}
	for _, m := range v.assetLayerMarkers {
		if strings.Contains(p, m) {
			return true
		}
	}
	return false
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
