// Package check implements the USD validation rules and the asset/scene
// classifier.
//
// A single [Validator] serves both modes. [ModeAsset] checks prim validity,
// reference portability and sublayer presence as warnings. [ModeScene]
// treats unresolvable or missing sublayers as errors, checks that the
// asset import layer is the strongest sublayer and reports invalid prims.
// Both modes warn when no default prim is set.
//
// Rules see the file only through the interfaces in package scene.
package check
