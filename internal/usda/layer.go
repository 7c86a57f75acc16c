package usda

// Layer is one parsed layer file. It implements scene.Layer.
type Layer struct {
	identifier string
	spec       *LayerSpec
	resolver   *Resolver
}

// Identifier returns the absolute path the layer was read from.
func (l *Layer) Identifier() string {
	return l.identifier
}

// SubLayerPaths returns the authored sublayer asset paths in order.
func (l *Layer) SubLayerPaths() []string {
	return append([]string(nil), l.spec.SubLayers...)
}

// ResolvePath anchors assetPath to the layer's directory.
func (l *Layer) ResolvePath(assetPath string) string {
	return l.resolver.Resolve(l.identifier, assetPath)
}

// DefaultPrim returns the authored defaultPrim metadata, or "".
func (l *Layer) DefaultPrim() string {
	return l.spec.DefaultPrim
}
