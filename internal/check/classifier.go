package check

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/usdcheck/internal/errors"
	"github.com/thoreinstein/usdcheck/internal/logging"
	"github.com/thoreinstein/usdcheck/internal/scene"
)

// DefaultSceneSublayerThreshold is the sublayer count above which a file is
// classified as a scene.
const DefaultSceneSublayerThreshold = 2

// DefaultSceneNameMarkers mark a scene root by base name, case-insensitively.
var DefaultSceneNameMarkers = []string{"root"}

// Classifier guesses whether a file is an asset or a scene. The decision is
// a best-effort heuristic based on the sublayer count and the file name.
type Classifier struct {
	engine      scene.Engine
	threshold   int
	nameMarkers []string
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithSceneSublayerThreshold sets the sublayer count above which a file is
// classified as a scene.
func WithSceneSublayerThreshold(n int) ClassifierOption {
	return func(c *Classifier) {
		if n >= 0 {
			c.threshold = n
		}
	}
}

// WithSceneNameMarkers sets the base-name substrings that mark a scene.
func WithSceneNameMarkers(markers []string) ClassifierOption {
	return func(c *Classifier) {
		if len(markers) > 0 {
			c.nameMarkers = markers
		}
	}
}

// NewClassifier creates a Classifier that opens files through engine.
func NewClassifier(engine scene.Engine, opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		engine:      engine,
		threshold:   DefaultSceneSublayerThreshold,
		nameMarkers: DefaultSceneNameMarkers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify opens path once and decides the validation mode. The opened stage
// is returned for reuse by [Validator.ValidateStage]. A file the engine
// cannot open yields an error matching errors.ErrCannotOpen.
func (c *Classifier) Classify(ctx context.Context, path string) (Mode, scene.Stage, error) {
	logger := logging.FromContext(ctx)

	stage, err := c.engine.OpenStage(path)
	if err != nil || stage == nil {
		if err == nil {
			err = errors.New("engine returned no stage")
		}
		return ModeAsset, nil, errors.Mark(errors.Wrapf(err, "classifying %s", path), errors.ErrCannotOpen)
	}

	root := stage.RootLayer()
	if root == nil {
		logger.Debug("classified without root layer", "path", path, "mode", ModeAsset.String())
		return ModeAsset, stage, nil
	}

	sublayers := len(root.SubLayerPaths())
	marker := c.nameMarker(filepath.Base(path))

	mode := ModeAsset
	if sublayers > c.threshold || marker != "" {
		mode = ModeScene
	}
	logger.Debug("classified",
		"path", path,
		"mode", mode.String(),
		"sublayers", sublayers,
		"threshold", c.threshold,
		"name_marker", marker)
	return mode, stage, nil
}

// nameMarker returns the first scene marker found in name, or "".
func (c *Classifier) nameMarker(name string) string {
	lower := strings.ToLower(name)
	for _, m := range c.nameMarkers {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return m
		}
	}
	return ""
}
