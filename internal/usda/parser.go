package usda

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

const (
	headerUSDA = "#usda "
	magicCrate = "PXR-USDC"
	magicZip   = "PK\x03\x04"
	// maxNesting bounds prim and value nesting depth.
	maxNesting = 256
)

// Parser reads text-format layers.
type Parser struct{}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses the layer at path.
func (p *Parser) ParseFile(path string) (*LayerSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	return p.Parse(f, path)
}

// Parse reads and parses a layer from r. path is used for error context.
func (p *Parser) Parse(r io.Reader, path string) (*LayerSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return p.ParseBytes(data, path)
}

// ParseBytes parses layer content. path is used for error context.
func (p *Parser) ParseBytes(data []byte, path string) (*LayerSpec, error) {
	if err := checkHeader(data); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	toks, err := newLexer(string(data)).tokenize()
	if err != nil {
		return nil, withPath(err, path)
	}

	ps := &parseState{toks: toks}
	spec, err := ps.parseLayer()
	if err != nil {
		return nil, withPath(err, path)
	}
	return spec, nil
}

func checkHeader(data []byte) error {
	switch {
	case bytes.HasPrefix(data, []byte(magicCrate)):
		return errors.Wrap(ErrUnsupportedFormat, "binary crate file")
	case bytes.HasPrefix(data, []byte(magicZip)):
		return errors.Wrap(ErrUnsupportedFormat, "usdz package")
	case !bytes.HasPrefix(data, []byte(headerUSDA)):
		return ErrNotUSDA
	}
	return nil
}

func withPath(err error, path string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Path == "" {
		pe.Path = path
	}
	return err
}

type parseState struct {
	toks  []token
	pos   int
	depth int
}

func (ps *parseState) peek() token {
	return ps.toks[ps.pos]
}

func (ps *parseState) peekAt(offset int) token {
	if ps.pos+offset >= len(ps.toks) {
		return ps.toks[len(ps.toks)-1]
	}
	return ps.toks[ps.pos+offset]
}

func (ps *parseState) next() token {
	t := ps.toks[ps.pos]
	if t.kind != tokEOF {
		ps.pos++
	}
	return t
}

func (ps *parseState) errorf(t token, format string, args ...any) error {
	return &ParseError{Line: t.line, Col: t.col, Err: errors.Wrapf(ErrSyntax, format, args...)}
}

func (ps *parseState) expectPunct(p string) error {
	t := ps.next()
	if !t.is(tokPunct, p) {
		return ps.errorf(t, "expected %q, got %s", p, t.describe())
	}
	return nil
}

func (ps *parseState) expect(kind tokenKind) (token, error) {
	t := ps.next()
	if t.kind != kind {
		return t, ps.errorf(t, "expected %s, got %s", kind, t.describe())
	}
	return t, nil
}

// skipSeparators consumes optional ';' and ',' between statements.
func (ps *parseState) skipSeparators() {
	for t := ps.peek(); t.is(tokPunct, ";") || t.is(tokPunct, ","); t = ps.peek() {
		ps.next()
	}
}

func (ps *parseState) parseLayer() (*LayerSpec, error) {
	spec := &LayerSpec{}

	if ps.peek().is(tokPunct, "(") {
		if err := ps.parseLayerMetadata(spec); err != nil {
			return nil, err
		}
	}

	for {
		ps.skipSeparators()
		t := ps.peek()
		if t.kind == tokEOF {
			return spec, nil
		}
		prim, err := ps.parsePrim()
		if err != nil {
			return nil, err
		}
		spec.Prims = append(spec.Prims, prim)
	}
}

func (ps *parseState) parseLayerMetadata(spec *LayerSpec) error {
	if err := ps.expectPunct("("); err != nil {
		return err
	}
	for {
		ps.skipSeparators()
		t := ps.peek()
		switch {
		case t.is(tokPunct, ")"):
			ps.next()
			return nil
		case t.kind == tokString:
			// Layer doc string
			ps.next()
			continue
		case t.kind != tokIdent:
			return ps.errorf(t, "expected layer metadata, got %s", t.describe())
		}

		_, key, err := ps.parseMetadataKey()
		if err != nil {
			return err
		}
		switch key {
		case "subLayers":
			spec.SubLayers, err = ps.parseSubLayers()
		case "defaultPrim":
			var v token
			v, err = ps.expect(tokString)
			spec.DefaultPrim = v.text
		default:
			err = ps.skipValue()
		}
		if err != nil {
			return err
		}
	}
}

// parseMetadataKey reads "[listop] key =".
func (ps *parseState) parseMetadataKey() (ListOp, string, error) {
	op := ListOpExplicit
	t := ps.next()
	if isListOp(t.text) && ps.peek().kind == tokIdent {
		op = ListOp(t.text)
		t = ps.next()
	}
	if t.kind != tokIdent {
		return op, "", ps.errorf(t, "expected metadata key, got %s", t.describe())
	}
	if err := ps.expectPunct("="); err != nil {
		return op, "", err
	}
	return op, t.text, nil
}

func (ps *parseState) parseSubLayers() ([]string, error) {
	if err := ps.expectPunct("["); err != nil {
		return nil, err
	}
	var paths []string
	for {
		ps.skipSeparators()
		t := ps.next()
		switch {
		case t.is(tokPunct, "]"):
			return paths, nil
		case t.kind == tokAsset:
			paths = append(paths, t.text)
			// Optional layer offset: (offset = 10; scale = 2)
			if ps.peek().is(tokPunct, "(") {
				if err := ps.skipBalanced(); err != nil {
					return nil, err
				}
			}
		default:
			return nil, ps.errorf(t, "expected sublayer asset path, got %s", t.describe())
		}
	}
}

func (ps *parseState) parsePrim() (*PrimSpec, error) {
	ps.depth++
	defer func() { ps.depth-- }()

	t := ps.next()
	specifier, ok := parseSpecifier(t.text)
	if t.kind != tokIdent || !ok {
		return nil, ps.errorf(t, "expected def, over or class, got %s", t.describe())
	}
	if ps.depth > maxNesting {
		return nil, ps.errorf(t, "prim nesting exceeds %d levels", maxNesting)
	}

	prim := &PrimSpec{Specifier: specifier}
	if ps.peek().kind == tokIdent {
		// Schema type name
		ps.next()
	}
	name, err := ps.expect(tokString)
	if err != nil {
		return nil, err
	}
	prim.Name = name.text

	if ps.peek().is(tokPunct, "(") {
		if err := ps.parsePrimMetadata(prim); err != nil {
			return nil, err
		}
	}

	if err := ps.expectPunct("{"); err != nil {
		return nil, err
	}
	children, err := ps.parseBody(prim)
	if err != nil {
		return nil, err
	}
	prim.Children = children
	return prim, nil
}

func (ps *parseState) parsePrimMetadata(prim *PrimSpec) error {
	if err := ps.expectPunct("("); err != nil {
		return err
	}
	for {
		ps.skipSeparators()
		t := ps.peek()
		switch {
		case t.is(tokPunct, ")"):
			ps.next()
			return nil
		case t.kind == tokString:
			ps.next()
			continue
		case t.kind != tokIdent:
			return ps.errorf(t, "expected prim metadata, got %s", t.describe())
		}

		op, key, err := ps.parseMetadataKey()
		if err != nil {
			return err
		}
		switch key {
		case "references":
			prim.ReferencesAuthored = true
			var refs []ReferenceSpec
			refs, err = ps.parseReferences()
			if op.adds() {
				prim.References = append(prim.References, refs...)
			}
		case "active":
			var active bool
			active, err = ps.parseBool()
			prim.Active = &active
		case "payload":
			var payloads []ReferenceSpec
			payloads, err = ps.parseReferences()
			if op.adds() {
				prim.Payloads = append(prim.Payloads, payloads...)
			}
		case "variants":
			err = ps.parseVariantSelection(prim)
		default:
			err = ps.skipValue()
		}
		if err != nil {
			return err
		}
	}
}

func (ps *parseState) parseBool() (bool, error) {
	t := ps.next()
	switch {
	case t.kind == tokIdent && t.text == "true", t.kind == tokNumber && t.text == "1":
		return true, nil
	case t.kind == tokIdent && t.text == "false", t.kind == tokNumber && t.text == "0":
		return false, nil
	}
	return false, ps.errorf(t, "expected boolean, got %s", t.describe())
}

// parseVariantSelection reads { string set = "variant" ... }.
func (ps *parseState) parseVariantSelection(prim *PrimSpec) error {
	if err := ps.expectPunct("{"); err != nil {
		return err
	}
	for {
		ps.skipSeparators()
		t := ps.next()
		switch {
		case t.is(tokPunct, "}"):
			return nil
		case !t.is(tokIdent, "string"):
			return ps.errorf(t, "expected variant selection, got %s", t.describe())
		}

		set := ps.next()
		if set.kind != tokIdent && set.kind != tokString {
			return ps.errorf(set, "expected variant set name, got %s", set.describe())
		}
		if err := ps.expectPunct("="); err != nil {
			return err
		}
		v, err := ps.expect(tokString)
		if err != nil {
			return err
		}
		if prim.VariantSelection == nil {
			prim.VariantSelection = make(map[string]string)
		}
		prim.VariantSelection[set.text] = v.text
	}
}

// parseReferences reads None, a single reference, or a bracketed list.
func (ps *parseState) parseReferences() ([]ReferenceSpec, error) {
	t := ps.peek()
	switch {
	case t.is(tokIdent, "None"):
		ps.next()
		return nil, nil
	case t.is(tokPunct, "["):
		ps.next()
		var refs []ReferenceSpec
		for {
			ps.skipSeparators()
			if ps.peek().is(tokPunct, "]") {
				ps.next()
				return refs, nil
			}
			ref, err := ps.parseReference()
			if err != nil {
				return nil, err
			}
			refs = append(refs, ref)
		}
	default:
		ref, err := ps.parseReference()
		if err != nil {
			return nil, err
		}
		return []ReferenceSpec{ref}, nil
	}
}

func (ps *parseState) parseReference() (ReferenceSpec, error) {
	var ref ReferenceSpec
	t := ps.next()
	switch t.kind {
	case tokAsset:
		ref.AssetPath = t.text
		if ps.peek().kind == tokPath {
			ref.PrimPath = ps.next().text
		}
	case tokPath:
		ref.PrimPath = t.text
	default:
		return ref, ps.errorf(t, "expected reference, got %s", t.describe())
	}
	// Optional layer offset or customData
	if ps.peek().is(tokPunct, "(") {
		if err := ps.skipBalanced(); err != nil {
			return ref, err
		}
	}
	return ref, nil
}

// parseBody reads statements up to the closing brace of a prim or variant.
func (ps *parseState) parseBody(owner *PrimSpec) ([]*PrimSpec, error) {
	var children []*PrimSpec
	for {
		ps.skipSeparators()
		t := ps.peek()
		switch {
		case t.is(tokPunct, "}"):
			ps.next()
			return children, nil
		case t.kind == tokEOF:
			return nil, ps.errorf(t, "unexpected end of file in prim body")
		case t.kind != tokIdent:
			return nil, ps.errorf(t, "expected prim or property, got %s", t.describe())
		}

		if _, ok := parseSpecifier(t.text); ok && ps.peekAt(1).kind != tokPunct {
			child, err := ps.parsePrim()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			continue
		}

		var err error
		if t.text == "variantSet" {
			err = ps.parseVariantSet(owner)
		} else {
			err = ps.skipProperty()
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseVariantSet reads variantSet "name" = { "variant" { ... } ... }.
func (ps *parseState) parseVariantSet(owner *PrimSpec) error {
	ps.next()
	name, err := ps.expect(tokString)
	if err != nil {
		return err
	}
	if err := ps.expectPunct("="); err != nil {
		return err
	}
	if err := ps.expectPunct("{"); err != nil {
		return err
	}
	for {
		ps.skipSeparators()
		t := ps.next()
		switch {
		case t.is(tokPunct, "}"):
			return nil
		case t.kind != tokString:
			return ps.errorf(t, "expected variant name, got %s", t.describe())
		}

		body := &PrimSpec{Specifier: SpecifierOver, Name: t.text}
		if ps.peek().is(tokPunct, "(") {
			if err := ps.parsePrimMetadata(body); err != nil {
				return err
			}
		}
		if err := ps.expectPunct("{"); err != nil {
			return err
		}
		prims, err := ps.parseBody(body)
		if err != nil {
			return err
		}
		body.Children = prims
		owner.addVariant(name.text, t.text, body)
	}
}

// skipProperty consumes an attribute, relationship or reorder statement:
//
//	[custom] [uniform] type[[]] name[.suffix] [= value] [(metadata)]
//	[listop] rel name [= target] [(metadata)]
//	reorder nameChildren = [...]
func (ps *parseState) skipProperty() error {
	start := ps.peek()
	words := 0
	for ps.peek().kind == tokIdent {
		ps.next()
		words++
		if ps.peek().is(tokPunct, "[") && ps.peekAt(1).is(tokPunct, "]") {
			ps.next()
			ps.next()
		}
	}
	if words < 2 {
		return ps.errorf(start, "malformed property declaration")
	}

	if ps.peek().is(tokPunct, "=") {
		ps.next()
		if err := ps.skipValue(); err != nil {
			return err
		}
	}
	if ps.peek().is(tokPunct, "(") {
		return ps.skipBalanced()
	}
	return nil
}

// skipValue consumes one scalar token or one bracketed group.
func (ps *parseState) skipValue() error {
	t := ps.peek()
	switch {
	case t.is(tokPunct, "("), t.is(tokPunct, "["), t.is(tokPunct, "{"):
		return ps.skipBalanced()
	case t.kind == tokPunct, t.kind == tokEOF:
		return ps.errorf(t, "expected value, got %s", t.describe())
	}
	ps.next()
	// A path may follow an asset in reference-like values
	if t.kind == tokAsset && ps.peek().kind == tokPath {
		ps.next()
	}
	return nil
}

// skipBalanced consumes a bracketed group starting at the current token.
func (ps *parseState) skipBalanced() error {
	open := ps.next()
	stack := []string{closerFor(open.text)}
	for len(stack) > 0 {
		if len(stack) > maxNesting {
			return ps.errorf(open, "value nesting exceeds %d levels", maxNesting)
		}
		t := ps.next()
		switch {
		case t.kind == tokEOF:
			return ps.errorf(open, "unclosed %q", open.text)
		case t.kind != tokPunct:
			continue
		case t.text == "(" || t.text == "[" || t.text == "{":
			stack = append(stack, closerFor(t.text))
		case t.text == ")" || t.text == "]" || t.text == "}":
			if t.text != stack[len(stack)-1] {
				return ps.errorf(t, "mismatched %q", t.text)
			}
			stack = stack[:len(stack)-1]
		}
	}
	return nil
}

func closerFor(open string) string {
	switch open {
	case "(":
		return ")"
	case "[":
		return "]"
	default:
		return "}"
	}
}
