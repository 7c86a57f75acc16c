package usda

import (
	"log/slog"
	"path/filepath"

	"github.com/thoreinstein/usdcheck/internal/config"
	"github.com/thoreinstein/usdcheck/internal/errors"
	"github.com/thoreinstein/usdcheck/internal/scene"
	"github.com/thoreinstein/usdcheck/pkg/fileutil"
)

// Engine opens text-format layers and composes them into stages.
// Layers are cached by absolute path for the lifetime of the engine.
// An Engine is not safe for concurrent use.
type Engine struct {
	logger      *slog.Logger
	resolver    *Resolver
	parser      *Parser
	maxFileSize int64

	layers   map[string]*Layer
	failures map[string]error
	indexes  map[string]*rawIndex
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for engine events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSearchPaths sets the directories searched for bare relative asset paths.
func WithSearchPaths(paths []string) Option {
	return func(e *Engine) {
		e.resolver = NewResolver(paths)
	}
}

// WithMaxFileSize sets the largest layer file the engine will read.
func WithMaxFileSize(n int64) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxFileSize = n
		}
	}
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:      slog.Default(),
		resolver:    NewResolver(nil),
		parser:      NewParser(),
		maxFileSize: config.DefaultMaxFileSize,
		layers:      make(map[string]*Layer),
		failures:    make(map[string]error),
		indexes:     make(map[string]*rawIndex),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ scene.Engine = (*Engine)(nil)

// OpenLayer finds or opens the layer at path. Relative paths are resolved
// against the working directory and then the search paths. The returned
// error matches errors.ErrCannotOpen.
func (e *Engine) OpenLayer(path string) (scene.Layer, error) {
	layer, err := e.openLayer(path)
	if err != nil {
		return nil, err
	}
	return layer, nil
}

// OpenStage opens path as a root layer and composes it.
// The returned error matches errors.ErrCannotOpen.
func (e *Engine) OpenStage(path string) (scene.Stage, error) {
	root, err := e.openLayer(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening stage")
	}
	stage := newStage(e, root)
	e.logger.Debug("composed stage",
		"root", root.identifier,
		"layers", len(stage.layers),
		"prims", stage.primCount)
	return stage, nil
}

func (e *Engine) openLayer(path string) (*Layer, error) {
	abs := e.resolver.Resolve("", path)
	if abs == "" {
		return nil, errors.Mark(errors.Newf("cannot resolve layer path %q", path), errors.ErrCannotOpen)
	}
	abs, err := filepath.Abs(abs)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "resolving %s", path), errors.ErrCannotOpen)
	}
	return e.openAbs(abs)
}

// openAbs finds or opens the layer at an absolute path.
func (e *Engine) openAbs(abs string) (*Layer, error) {
	if layer, ok := e.layers[abs]; ok {
		return layer, nil
	}
	if err, ok := e.failures[abs]; ok {
		return nil, err
	}

	layer, err := e.readLayer(abs)
	if err != nil {
		err = errors.Mark(errors.Wrapf(err, "opening layer %s", abs), errors.ErrCannotOpen)
		e.failures[abs] = err
		e.logger.Debug("layer open failed", "path", abs, "error", err)
		return nil, err
	}

	e.layers[abs] = layer
	e.logger.Debug("opened layer",
		"path", abs,
		"sublayers", len(layer.spec.SubLayers),
		"root_prims", len(layer.spec.Prims))
	return layer, nil
}

func (e *Engine) readLayer(abs string) (*Layer, error) {
	if !fileutil.Exists(abs) {
		return nil, errors.ErrNotFound
	}
	data, err := fileutil.ReadFileWithLimit(abs, e.maxFileSize)
	if err != nil {
		return nil, err
	}
	spec, err := e.parser.ParseBytes(data, abs)
	if err != nil {
		return nil, err
	}
	return &Layer{identifier: abs, spec: spec, resolver: e.resolver}, nil
}
