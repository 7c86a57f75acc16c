package usda

// Specifier is the authored specifier of a prim spec.
type Specifier int

const (
	// SpecifierOver contributes opinions without defining the prim.
	SpecifierOver Specifier = iota
	// SpecifierDef defines a concrete prim.
	SpecifierDef
	// SpecifierClass defines an abstract prim that traversal skips.
	SpecifierClass
)

func (s Specifier) String() string {
	switch s {
	case SpecifierDef:
		return "def"
	case SpecifierClass:
		return "class"
	default:
		return "over"
	}
}

func parseSpecifier(s string) (Specifier, bool) {
	switch s {
	case "def":
		return SpecifierDef, true
	case "over":
		return SpecifierOver, true
	case "class":
		return SpecifierClass, true
	default:
		return SpecifierOver, false
	}
}

// ListOp is the list-editing operation applied to a list-valued field.
type ListOp string

// List-editing operations; ListOpExplicit is the unprefixed form.
const (
	ListOpExplicit ListOp = ""
	ListOpPrepend  ListOp = "prepend"
	ListOpAppend   ListOp = "append"
	ListOpAdd      ListOp = "add"
	ListOpDelete   ListOp = "delete"
	ListOpReorder  ListOp = "reorder"
)

func isListOp(s string) bool {
	switch ListOp(s) {
	case ListOpPrepend, ListOpAppend, ListOpAdd, ListOpDelete, ListOpReorder:
		return true
	}
	return false
}

// adds reports whether items under op contribute to the composed list.
func (op ListOp) adds() bool {
	switch op {
	case ListOpExplicit, ListOpPrepend, ListOpAppend, ListOpAdd:
		return true
	}
	return false
}

// LayerSpec is the parsed content of one layer file.
type LayerSpec struct {
	DefaultPrim string
	SubLayers   []string
	Prims       []*PrimSpec
}

// PrimSpec is one authored prim statement, or one variant body. A variant
// body's Children are prims and its metadata applies to the owning prim.
type PrimSpec struct {
	Specifier Specifier
	Name      string
	// Active is nil when no opinion is authored.
	Active *bool
	// ReferencesAuthored is true when any references statement exists,
	// including delete and reorder edits.
	ReferencesAuthored bool
	References         []ReferenceSpec
	// Payloads are composed like references but never reported as references.
	Payloads []ReferenceSpec
	// VariantSelection maps a variant set name to its selected variant.
	VariantSelection map[string]string
	// Variants holds variant bodies by set name, then variant name.
	Variants map[string]map[string]*PrimSpec
	Children []*PrimSpec
}

// addVariant records body under set and variant. Repeated blocks for the
// same variant are concatenated.
func (p *PrimSpec) addVariant(set, variant string, body *PrimSpec) {
	if p.Variants == nil {
		p.Variants = make(map[string]map[string]*PrimSpec)
	}
	if p.Variants[set] == nil {
		p.Variants[set] = make(map[string]*PrimSpec)
	}
	prev, ok := p.Variants[set][variant]
	if !ok {
		p.Variants[set][variant] = body
		return
	}
	prev.ReferencesAuthored = prev.ReferencesAuthored || body.ReferencesAuthored
	prev.References = append(prev.References, body.References...)
	prev.Payloads = append(prev.Payloads, body.Payloads...)
	prev.Children = append(prev.Children, body.Children...)
}

// ReferenceSpec is one added or explicit reference or payload item.
type ReferenceSpec struct {
	AssetPath string
	PrimPath  string
}
