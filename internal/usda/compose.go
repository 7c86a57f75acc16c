package usda

import (
	"context"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/thoreinstein/usdcheck/internal/logging"
)

// maxReferenceDepth bounds how many reference arcs may be followed in a chain.
const maxReferenceDepth = 32

// specSite is one prim spec together with the layer that authored it.
type specSite struct {
	layer *Layer
	spec  *PrimSpec
}

// rawNode merges the prim specs of one layer stack at a single path.
// Specs are ordered strongest first.
type rawNode struct {
	name     string
	path     string
	sites    []specSite
	children []*rawNode
	byName   map[string]*rawNode
}

func newRawNode(name, p string) *rawNode {
	return &rawNode{name: name, path: p, byName: make(map[string]*rawNode)}
}

func (n *rawNode) child(name string) *rawNode {
	if c, ok := n.byName[name]; ok {
		return c
	}
	c := newRawNode(name, path.Join(n.path, name))
	n.byName[name] = c
	n.children = append(n.children, c)
	return c
}

func (n *rawNode) add(layer *Layer, spec *PrimSpec) {
	c := n.child(spec.Name)
	c.sites = append(c.sites, specSite{layer: layer, spec: spec})
	for _, child := range spec.Children {
		c.add(layer, child)
	}
}

// find returns the node at an absolute prim path, or nil.
func (n *rawNode) find(primPath string) *rawNode {
	cur := n
	for _, name := range splitPrimPath(primPath) {
		next, ok := cur.byName[name]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// refArc is one reference or payload item together with the layer that
// authored it.
type refArc struct {
	layer *Layer
	ref   ReferenceSpec
	kind  string
}

// rawIndex is the merged, reference-free view of one root layer's stack.
type rawIndex struct {
	id     string
	root   *rawNode
	layers []*Layer
}

// primNode is a composed prim.
type primNode struct {
	name      string
	path      string
	specifier Specifier
	active    *bool
	cycle     bool

	refsAuthored bool
	refs         []ReferenceSpec

	children []*primNode
	byName   map[string]*primNode
}

func (n *primNode) isActive() bool {
	return n.active == nil || *n.active
}

func (n *primNode) addChild(c *primNode) {
	if n.byName == nil {
		n.byName = make(map[string]*primNode)
	}
	n.byName[c.name] = c
	n.children = append(n.children, c)
}

// mergeWeaker folds src into n with src's opinions weaker than n's.
func (n *primNode) mergeWeaker(src *primNode) {
	if n.specifier == SpecifierOver {
		n.specifier = src.specifier
	}
	if n.active == nil {
		n.active = src.active
	}
	n.cycle = n.cycle || src.cycle
	n.refsAuthored = n.refsAuthored || src.refsAuthored
	n.refs = append(n.refs, src.refs...)
	for _, sc := range src.children {
		n.mergeChild(sc)
	}
}

// mergeChild adds c, or folds it into an existing child of the same name.
func (n *primNode) mergeChild(c *primNode) {
	if existing, ok := n.byName[c.name]; ok {
		existing.mergeWeaker(c)
		return
	}
	n.addChild(c)
}

// composer expands reference arcs on top of raw indexes.
type composer struct {
	engine *Engine
}

// index returns the merged layer stack rooted at root, building it once
// per engine.
func (c *composer) index(root *Layer) *rawIndex {
	if idx, ok := c.engine.indexes[root.identifier]; ok {
		return idx
	}

	idx := &rawIndex{id: root.identifier, root: newRawNode("", "/")}
	idx.layers = c.layerStack(root, nil, make(map[string]bool))
	for _, layer := range idx.layers {
		for _, spec := range layer.spec.Prims {
			idx.root.add(layer, spec)
		}
	}
	c.engine.indexes[root.identifier] = idx
	return idx
}

// layerStack returns layer followed by its sublayers, strongest first.
// Later sublayer entries are stronger than earlier ones.
func (c *composer) layerStack(layer *Layer, stack []*Layer, seen map[string]bool) []*Layer {
	if seen[layer.identifier] {
		c.engine.logger.Debug("skipping sublayer cycle", "layer", layer.identifier)
		return stack
	}
	seen[layer.identifier] = true
	stack = append(stack, layer)

	subs := layer.spec.SubLayers
	for i := len(subs) - 1; i >= 0; i-- {
		resolved := layer.ResolvePath(subs[i])
		if resolved == "" {
			c.engine.logger.Debug("skipping unresolvable sublayer", "layer", layer.identifier, "sublayer", subs[i])
			continue
		}
		sub, err := c.engine.openAbs(resolved)
		if err != nil {
			c.engine.logger.Debug("skipping unreadable sublayer", "layer", layer.identifier, "sublayer", resolved)
			continue
		}
		stack = c.layerStack(sub, stack, seen)
	}
	return stack
}

// arcKey identifies a reference target for cycle detection.
func arcKey(layerID, primPath string) string {
	return layerID + "<" + primPath + ">"
}

// expand composes raw at destPath. Opinions are applied strongest first:
// local specs, selected variants, references, then payloads. Only prims
// expanded with local set expose their references.
func (c *composer) expand(idx *rawIndex, raw *rawNode, destPath string, chain []string, local bool) *primNode {
	n := &primNode{
		name:      path.Base(destPath),
		path:      destPath,
		specifier: SpecifierOver,
	}

	variants := selectVariants(raw.sites)

	var refs, payloads []refArc
	for _, site := range slices.Concat(raw.sites, variants) {
		spec := site.spec
		if n.specifier == SpecifierOver {
			n.specifier = spec.Specifier
		}
		if n.active == nil && spec.Active != nil {
			n.active = spec.Active
		}
		if local && spec.ReferencesAuthored {
			n.refsAuthored = true
		}
		for _, ref := range spec.References {
			if local {
				n.refs = append(n.refs, ref)
			}
			refs = append(refs, refArc{layer: site.layer, ref: ref, kind: "reference"})
		}
		for _, p := range spec.Payloads {
			payloads = append(payloads, refArc{layer: site.layer, ref: p, kind: "payload"})
		}
	}

	for _, child := range raw.children {
		n.addChild(c.expand(idx, child, path.Join(destPath, child.name), chain, local))
	}

	if len(variants) > 0 {
		body := newRawNode("", destPath)
		for _, site := range variants {
			for _, child := range site.spec.Children {
				body.add(site.layer, child)
			}
		}
		for _, child := range body.children {
			n.mergeChild(c.expand(idx, child, path.Join(destPath, child.name), chain, local))
		}
	}

	for _, arc := range slices.Concat(refs, payloads) {
		c.graft(n, idx, arc, chain)
	}
	return n
}

// selectVariants returns the variant bodies selected across sites,
// strongest first. The strongest selection for each set wins, and bodies
// may select and author nested variant sets.
func selectVariants(sites []specSite) []specSite {
	selection := make(map[string]string)
	var selected []specSite
	for len(sites) > 0 {
		for _, site := range sites {
			for set, v := range site.spec.VariantSelection {
				if _, ok := selection[set]; !ok {
					selection[set] = v
				}
			}
		}
		var next []specSite
		for _, site := range sites {
			for _, set := range slices.Sorted(maps.Keys(site.spec.Variants)) {
				v, ok := selection[set]
				if !ok {
					continue
				}
				if body, ok := site.spec.Variants[set][v]; ok {
					next = append(next, specSite{layer: site.layer, spec: body})
				}
			}
		}
		selected = append(selected, next...)
		sites = next
	}
	return selected
}

// graft composes the target of a reference or payload beneath n as weaker
// opinions.
func (c *composer) graft(n *primNode, idx *rawIndex, arc refArc, chain []string) {
	logger := c.engine.logger
	ref := arc.ref

	targetIdx := idx
	if ref.AssetPath != "" {
		resolved := arc.layer.ResolvePath(ref.AssetPath)
		if resolved == "" {
			logger.Debug("skipping unresolvable "+arc.kind, "prim", n.path, "asset", ref.AssetPath)
			return
		}
		layer, err := c.engine.openAbs(resolved)
		if err != nil {
			logger.Debug("skipping unreadable "+arc.kind, "prim", n.path, "asset", resolved)
			return
		}
		targetIdx = c.index(layer)
	}

	targetPath := ref.PrimPath
	if targetPath == "" {
		if ref.AssetPath == "" {
			return
		}
		targetPath = defaultPrimPath(targetIdx)
		if targetPath == "" {
			logger.Debug(arc.kind+" target has no default prim", "prim", n.path, "asset", ref.AssetPath)
			return
		}
	}

	key := arcKey(targetIdx.id, targetPath)
	if slices.Contains(chain, key) {
		logger.Debug("reference cycle", "prim", n.path, "target", key)
		n.cycle = true
		return
	}
	if len(chain) >= maxReferenceDepth {
		logger.Warn("reference chain too deep", "prim", n.path, "depth", len(chain))
		n.cycle = true
		return
	}

	target := targetIdx.root.find(targetPath)
	if target == nil || target == targetIdx.root {
		logger.Debug(arc.kind+" target not found", "prim", n.path, "target", key)
		return
	}

	grafted := c.expand(targetIdx, target, n.path, append(slices.Clone(chain), key), false)
	logger.Log(context.Background(), logging.LevelTrace, "grafted "+arc.kind, "prim", n.path, "target", key, "children", len(grafted.children))
	n.mergeWeaker(grafted)
}

// defaultPrimPath returns the strongest defaultPrim opinion in the stack
// as an absolute path.
func defaultPrimPath(idx *rawIndex) string {
	for _, layer := range idx.layers {
		if name := layer.DefaultPrim(); name != "" {
			if name[0] == '/' {
				return name
			}
			return "/" + name
		}
	}
	return ""
}

func splitPrimPath(p string) []string {
	var parts []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
