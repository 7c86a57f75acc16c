package usda

import (
	"unicode"

	"github.com/thoreinstein/usdcheck/internal/scene"
)

// Stage is a composed root layer. It implements scene.Stage.
type Stage struct {
	root      *Layer
	layers    []*Layer
	pseudo    *primNode
	primCount int
}

var _ scene.Stage = (*Stage)(nil)

func newStage(e *Engine, root *Layer) *Stage {
	c := &composer{engine: e}
	idx := c.index(root)
	s := &Stage{
		root:   root,
		layers: idx.layers,
		pseudo: c.expand(idx, idx.root, "/", nil, true),
	}
	s.primCount = len(s.Traverse())
	return s
}

// RootLayer returns the layer the stage was opened from.
func (s *Stage) RootLayer() scene.Layer {
	if s.root == nil {
		return nil
	}
	return s.root
}

// LayerStack returns the identifiers of the root layer and every readable
// sublayer, strongest first.
func (s *Stage) LayerStack() []string {
	ids := make([]string, 0, len(s.layers))
	for _, l := range s.layers {
		ids = append(ids, l.identifier)
	}
	return ids
}

// Traverse returns defined, active, non-abstract prims in depth-first
// pre-order. Subtrees of excluded prims are pruned.
func (s *Stage) Traverse() []scene.Prim {
	var prims []scene.Prim
	var walk func(n *primNode)
	walk = func(n *primNode) {
		for _, c := range n.children {
			if c.specifier != SpecifierDef || !c.isActive() {
				continue
			}
			prims = append(prims, &Prim{node: c})
			walk(c)
		}
	}
	walk(s.pseudo)
	return prims
}

// DefaultPrim returns the root prim named by the root layer's defaultPrim
// metadata, or nil.
func (s *Stage) DefaultPrim() scene.Prim {
	name := s.root.DefaultPrim()
	if name == "" {
		return nil
	}
	n := s.pseudo.byName[trimLeadingSlash(name)]
	if n == nil {
		return nil
	}
	return &Prim{node: n}
}

// PrimAt returns the composed prim at an absolute path, or nil.
func (s *Stage) PrimAt(primPath string) scene.Prim {
	cur := s.pseudo
	for _, name := range splitPrimPath(primPath) {
		next, ok := cur.byName[name]
		if !ok {
			return nil
		}
		cur = next
	}
	if cur == s.pseudo {
		return nil
	}
	return &Prim{node: cur}
}

func trimLeadingSlash(s string) string {
	if len(s) > 0 && s[0] == '/' {
		return s[1:]
	}
	return s
}

// Prim is a composed prim. It implements scene.Prim.
type Prim struct {
	node *primNode
}

var _ scene.Prim = (*Prim)(nil)

// Path returns the absolute prim path.
func (p *Prim) Path() string {
	return p.node.path
}

// IsValid reports whether the prim name is a legal identifier and no
// reference cycle passes through the prim.
func (p *Prim) IsValid() bool {
	return isIdentifier(p.node.name) && !p.node.cycle
}

// HasAuthoredReferences reports whether the local layer stack authors a
// references opinion on the prim.
func (p *Prim) HasAuthoredReferences() bool {
	return p.node.refsAuthored
}

// References returns the reference items authored in the local layer stack,
// strongest first.
func (p *Prim) References() []scene.Reference {
	refs := make([]scene.Reference, 0, len(p.node.refs))
	for _, r := range p.node.refs {
		refs = append(refs, scene.Reference{AssetPath: r.AssetPath, PrimPath: r.PrimPath})
	}
	return refs
}

// isIdentifier reports whether s is a legal prim name: a letter or
// underscore followed by letters, digits, underscores or combining marks.
// Letters and digits may be any Unicode letter or digit.
func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc)):
		default:
			return false
		}
	}
	return s != ""
}
