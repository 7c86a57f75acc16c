// Package scene defines the capabilities the validation rules need from a
// scene-description engine.
//
// Rules are written against these interfaces only. The text-format engine in
// internal/usda is one implementation; tests substitute doubles.
package scene

// Engine opens files as composed stages or as individual layers.
type Engine interface {
	// OpenStage opens path and composes it with its sublayers and references.
	OpenStage(path string) (Stage, error)
	// OpenLayer finds or opens a single layer without composing it.
	OpenLayer(path string) (Layer, error)
}

// Stage is the composed, read-only view of a root layer.
type Stage interface {
	// RootLayer returns the layer the stage was opened from, or nil.
	RootLayer() Layer
	// Traverse returns the composed prims in depth-first pre-order.
	Traverse() []Prim
	// DefaultPrim returns the prim named by the defaultPrim metadata, or nil.
	DefaultPrim() Prim
}

// Layer is a single file of scene description.
type Layer interface {
	// Identifier is the absolute path the layer was read from.
	Identifier() string
	// SubLayerPaths lists the authored sublayer asset paths in order.
	SubLayerPaths() []string
	// ResolvePath anchors assetPath to this layer and returns the resolved
	// location, or "" when it cannot be resolved.
	ResolvePath(assetPath string) string
}

// Prim is a node in the composed scene hierarchy.
type Prim interface {
	// Path is the absolute scene path, e.g. /World/Geo.
	Path() string
	// IsValid reports whether the engine considers the prim well-formed.
	IsValid() bool
	// HasAuthoredReferences reports whether any references opinion is authored.
	HasAuthoredReferences() bool
	// References returns the added or explicit reference items.
	References() []Reference
}

// Reference is one item of a prim's references list.
type Reference struct {
	// AssetPath is the referenced file as authored, without @ delimiters.
	// Internal references have an empty AssetPath.
	AssetPath string
	// PrimPath is the targeted prim in the referenced layer, or "".
	PrimPath string
}
