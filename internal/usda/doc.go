// Package usda implements the scene engine for text-format USD layers.
//
// The engine reads .usda files, merges each root layer with its sublayers
// and composes reference arcs into a prim hierarchy. It covers the subset of
// composition the validation rules observe: layer stacks, references, prim
// specifiers and the active flag. Payloads, variant selections, inherits and
// specializes are parsed but not composed.
//
// Binary crate files and usdz packages are rejected with
// ErrUnsupportedFormat.
package usda
