package usda

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/usdcheck/internal/errors"
	"github.com/thoreinstein/usdcheck/internal/logging"
	"github.com/thoreinstein/usdcheck/internal/scene"
	"github.com/thoreinstein/usdcheck/pkg/fileutil"
)

func writeLayer(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#usda 1.0\n"+content), 0o644))
	return path
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	return NewEngine(append([]Option{WithLogger(logging.ForTest(t))}, opts...)...)
}

func primPaths(prims []scene.Prim) []string {
	paths := make([]string, 0, len(prims))
	for _, p := range prims {
		paths = append(paths, p.Path())
	}
	return paths
}

func openStage(t *testing.T, e *Engine, path string) *Stage {
	t.Helper()
	st, err := e.OpenStage(path)
	require.NoError(t, err)
	stage, ok := st.(*Stage)
	require.True(t, ok)
	return stage
}

func TestEngine_OpenLayer(t *testing.T) {
	dir := t.TempDir()
	path := writeLayer(t, dir, "prop.usda", `(
    defaultPrim = "Prop"
    subLayers = [@./a.usda@, @b.usda@]
)
def "Prop" {}
`)
	e := newTestEngine(t)

	layer, err := e.OpenLayer(path)
	require.NoError(t, err)
	assert.Equal(t, path, layer.Identifier())
	assert.Equal(t, []string{"./a.usda", "b.usda"}, layer.SubLayerPaths())
	assert.Equal(t, filepath.Join(dir, "a.usda"), layer.ResolvePath("./a.usda"))

	again, err := e.OpenLayer(path)
	require.NoError(t, err)
	assert.Same(t, layer.(*Layer), again.(*Layer), "layers are cached by path")
}

func TestEngine_OpenLayer_Relative(t *testing.T) {
	dir := t.TempDir()
	library := t.TempDir()
	writeLayer(t, dir, "local.usda", "")
	writeLayer(t, library, "shared.usda", "")
	t.Chdir(dir)

	e := newTestEngine(t, WithSearchPaths([]string{library}))

	layer, err := e.OpenLayer("./local.usda")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(layer.Identifier()))

	layer, err = e.OpenLayer("shared.usda")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(library, "shared.usda"), layer.Identifier())
}

func TestEngine_OpenLayer_Failures(t *testing.T) {
	dir := t.TempDir()
	crate := filepath.Join(dir, "crate.usdc")
	require.NoError(t, os.WriteFile(crate, []byte("PXR-USDC\x00\x00\x00"), 0o644))
	big := writeLayer(t, dir, "big.usda", `def "A" {}`)
	broken := writeLayer(t, dir, "broken.usda", `def "A" {`)

	tests := []struct {
		name  string
		path  string
		opts  []Option
		cause error
	}{
		{"missing", filepath.Join(dir, "missing.usda"), nil, errors.ErrNotFound},
		{"crate", crate, nil, ErrUnsupportedFormat},
		{"too large", big, []Option{WithMaxFileSize(8)}, fileutil.ErrFileTooLarge},
		{"syntax", broken, nil, ErrSyntax},
		{"remote", "omniverse://host/a.usd", nil, errors.ErrCannotOpen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, tt.opts...)

			layer, err := e.OpenLayer(tt.path)
			require.Error(t, err)
			assert.True(t, layer == nil, "failed open must return a nil interface")
			assert.True(t, errors.Is(err, errors.ErrCannotOpen), "got %v", err)
			assert.True(t, errors.Is(err, tt.cause), "got %v", err)

			st, err := e.OpenStage(tt.path)
			require.Error(t, err)
			assert.True(t, st == nil)
			assert.True(t, errors.Is(err, errors.ErrCannotOpen))
		})
	}
}

func TestStage_SublayerStrength(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "layers/weak.usda", `over "World" {
    over "Geo" (active = true) {}
    def "FromWeak" {}
}
`)
	writeLayer(t, dir, "layers/strong.usda", `over "World" {
    over "Geo" (active = false) {}
    def "FromStrong" {}
}
`)
	root := writeLayer(t, dir, "shot_root.usda", `(
    defaultPrim = "World"
    subLayers = [@./layers/weak.usda@, @./layers/strong.usda@, @./layers/missing.usda@]
)
def Xform "World" {
    def "Geo" {}
}
`)

	stage := openStage(t, newTestEngine(t), root)

	assert.Equal(t, []string{
		root,
		filepath.Join(dir, "layers", "strong.usda"),
		filepath.Join(dir, "layers", "weak.usda"),
	}, stage.LayerStack(), "later sublayers are stronger and unreadable ones are skipped")
	assert.Equal(t, []string{"/World", "/World/FromStrong", "/World/FromWeak"}, primPaths(stage.Traverse()),
		"the stronger sublayer deactivates Geo")

	dp := stage.DefaultPrim()
	require.NotNil(t, dp)
	assert.Equal(t, "/World", dp.Path())
	assert.Equal(t, root, stage.RootLayer().Identifier())
}

func TestStage_SublayerCycle(t *testing.T) {
	dir := t.TempDir()
	a := writeLayer(t, dir, "a.usda", "(\n    subLayers = [@./b.usda@]\n)\ndef \"A\" {}\n")
	writeLayer(t, dir, "b.usda", "(\n    subLayers = [@./a.usda@]\n)\ndef \"B\" {}\n")

	stage := openStage(t, newTestEngine(t), a)
	assert.Len(t, stage.LayerStack(), 2)
	assert.Equal(t, []string{"/A", "/B"}, primPaths(stage.Traverse()))
}

func TestStage_TraversePredicate(t *testing.T) {
	dir := t.TempDir()
	root := writeLayer(t, dir, "scene.usda", `def "World" {
    def "Kept" {
        def "Leaf" {}
    }
    def "Off" (active = false) {
        def "Hidden" {}
    }
    class "_Template" {
        def "Hidden" {}
    }
    over "OnlyOver" {
        def "Hidden" {}
    }
}
def "Second" {}
`)
	stage := openStage(t, newTestEngine(t), root)
	assert.Equal(t, []string{"/World", "/World/Kept", "/World/Kept/Leaf", "/Second"}, primPaths(stage.Traverse()))
	assert.True(t, stage.DefaultPrim() == nil, "no defaultPrim metadata yields a nil interface")
}

func TestStage_DefaultPrimMissingTarget(t *testing.T) {
	dir := t.TempDir()
	root := writeLayer(t, dir, "asset.usda", "(\n    defaultPrim = \"Nope\"\n)\ndef \"Asset\" {}\n")
	stage := openStage(t, newTestEngine(t), root)
	assert.True(t, stage.DefaultPrim() == nil)
}

func TestStage_ExternalReference(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "010_ASS_USD/chair.usda", `(
    defaultPrim = "Chair"
)
def Xform "Chair" {
    def Mesh "Seat" {}
    def Mesh "Legs" {}
}
def Xform "Table" {
    def Mesh "Top" {}
}
`)
	root := writeLayer(t, dir, "020_LYR_USD/set.usda", `def Xform "Set" {
    over "Chair" (
        references = @../010_ASS_USD/chair.usda@
    )
    {
        over "Seat" (active = false) {}
    }
    def "Table" (
        prepend references = @../010_ASS_USD/chair.usda@</Table>
    )
    {
    }
    def "Broken" (
        references = @./missing.usda@
    )
    {
    }
}
`)

	stage := openStage(t, newTestEngine(t), root)
	assert.Equal(t, []string{
		"/Set",
		"/Set/Chair",
		"/Set/Chair/Legs",
		"/Set/Table",
		"/Set/Table/Top",
		"/Set/Broken",
	}, primPaths(stage.Traverse()))

	chair := stage.PrimAt("/Set/Chair")
	require.NotNil(t, chair)
	assert.True(t, chair.IsValid())
	assert.True(t, chair.HasAuthoredReferences())
	assert.Equal(t, []scene.Reference{{AssetPath: "../010_ASS_USD/chair.usda"}}, chair.References())

	top := stage.PrimAt("/Set/Table/Top")
	require.NotNil(t, top)
	assert.False(t, top.HasAuthoredReferences())
	assert.Empty(t, top.References())

	broken := stage.PrimAt("/Set/Broken")
	require.NotNil(t, broken)
	assert.True(t, broken.IsValid(), "an unresolved reference does not invalidate the prim")
	assert.Equal(t, []scene.Reference{{AssetPath: "./missing.usda"}}, broken.References())
}

func TestStage_NestedReferencesAreNotLocal(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "leaf.usda", "(\n    defaultPrim = \"Leaf\"\n)\ndef \"Leaf\" {\n    def \"Geo\" {}\n}\n")
	writeLayer(t, dir, "mid.usda", `(
    defaultPrim = "Mid"
)
def "Mid" {
    def "Inner" (
        references = @leaf.usda@
    )
    {
    }
}
`)
	root := writeLayer(t, dir, "top.usda", "def \"Top\" (\n    references = @./mid.usda@\n)\n{\n}\n")

	stage := openStage(t, newTestEngine(t), root)
	assert.Equal(t, []string{"/Top", "/Top/Inner", "/Top/Inner/Geo"}, primPaths(stage.Traverse()))

	inner := stage.PrimAt("/Top/Inner")
	require.NotNil(t, inner)
	assert.False(t, inner.HasAuthoredReferences(), "references authored in mid.usda are not local to top.usda")
}

func TestStage_InternalReference(t *testing.T) {
	dir := t.TempDir()
	root := writeLayer(t, dir, "asset.usda", `class "_Proto" {
    def "Geo" {}
}
def "Instance" (
    references = </_Proto>
)
{
}
`)
	stage := openStage(t, newTestEngine(t), root)
	assert.Equal(t, []string{"/Instance", "/Instance/Geo"}, primPaths(stage.Traverse()))
	assert.True(t, stage.PrimAt("/Instance").IsValid())
}

func TestStage_ReferenceCycles(t *testing.T) {
	t.Run("self reference", func(t *testing.T) {
		dir := t.TempDir()
		root := writeLayer(t, dir, "self.usda", "def \"A\" (\n    references = </A>\n)\n{\n    def \"B\" {}\n}\n")
		stage := openStage(t, newTestEngine(t), root)

		a := stage.PrimAt("/A")
		require.NotNil(t, a)
		assert.False(t, a.IsValid())
		assert.True(t, stage.PrimAt("/A/B").IsValid())
	})

	t.Run("cross file", func(t *testing.T) {
		dir := t.TempDir()
		a := writeLayer(t, dir, "a.usda", "(\n    defaultPrim = \"A\"\n)\ndef \"A\" (\n    references = @./b.usda@\n)\n{\n}\n")
		writeLayer(t, dir, "b.usda", "(\n    defaultPrim = \"B\"\n)\ndef \"B\" (\n    references = @./a.usda@\n)\n{\n}\n")

		stage := openStage(t, newTestEngine(t), a)
		prims := stage.Traverse()
		require.Len(t, prims, 1)
		assert.Equal(t, "/A", prims[0].Path())
		assert.False(t, prims[0].IsValid())
	})
}

func TestPrim_IsValidName(t *testing.T) {
	dir := t.TempDir()
	root := writeLayer(t, dir, "names.usda", `def "good_Name1" {}
def "1leadingDigit" {}
def "has space" {}
def "dash-ed" {}
def "Stühle" {}
def "_Ω2" {}
def "ａ" {}
def "á" {}
def "２x" {}
`)
	stage := openStage(t, newTestEngine(t), root)

	valid := map[string]bool{}
	for _, p := range stage.Traverse() {
		valid[p.Path()] = p.IsValid()
	}
	assert.Equal(t, map[string]bool{
		"/good_Name1":    true,
		"/1leadingDigit": false,
		"/has space":     false,
		"/dash-ed":       false,
		"/Stühle":        true,
		"/_Ω2":           true,
		"/٣d":            false,
	}, valid)
}

const chairWithVariants = `(
    defaultPrim = "Chair"
)
def Xform "Chair" (
    variants = { string lod = "high" }
)
{
    def Xform "Base" {}
    variantSet "lod" = {
        "high" (
            variants = { string detail = "full" }
        ) {
            def Xform "Hi" (
                references = @./missing_high.usda@
            )
            {
            }
            over "Base" (active = false) {}
            variantSet "detail" = {
                "full" {
                    def Mesh "Bolts" {}
                }
            }
        }
        "low" {
            def Xform "Lo" {}
        }
    }
}
`

func TestStage_VariantSelection(t *testing.T) {
	dir := t.TempDir()
	root := writeLayer(t, dir, "chair.usda", chairWithVariants)

	stage := openStage(t, newTestEngine(t), root)
	assert.Equal(t, []string{"/Chair", "/Chair/Hi", "/Chair/Bolts"}, primPaths(stage.Traverse()),
		"the selected variant adds prims and its opinions apply where the local stack has none")

	hi := stage.PrimAt("/Chair/Hi")
	require.NotNil(t, hi)
	assert.True(t, hi.HasAuthoredReferences(), "references inside a local variant are authored in the file")
	assert.Equal(t, []scene.Reference{{AssetPath: "./missing_high.usda"}}, hi.References())

	assert.Nil(t, stage.PrimAt("/Chair/Lo"), "unselected variants are not composed")
}

func TestStage_VariantSelectionStrongestWins(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "chair.usda", chairWithVariants)
	root := writeLayer(t, dir, "shot.usda", `(
    subLayers = [@./chair.usda@]
)
over "Chair" (
    variants = { string lod = "low" }
)
{
    def Xform "Base" (active = true) {}
}
`)

	stage := openStage(t, newTestEngine(t), root)
	assert.Equal(t, []string{"/Chair", "/Chair/Base", "/Chair/Lo"}, primPaths(stage.Traverse()))
}

func TestStage_VariantWithoutSelection(t *testing.T) {
	dir := t.TempDir()
	root := writeLayer(t, dir, "chair.usda", `def Xform "Chair" {
    variantSet "lod" = {
        "high" {
            def Xform "Hi" {}
        }
    }
}
`)

	stage := openStage(t, newTestEngine(t), root)
	assert.Equal(t, []string{"/Chair"}, primPaths(stage.Traverse()))
}

func TestStage_Payload(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "set_payload.usda", `(
    defaultPrim = "Set"
)
def Xform "Set" {
    def Mesh "Table" {}
}
def Xform "Props" {
    def Mesh "Lamp" {}
}
`)
	root := writeLayer(t, dir, "shot.usda", `def Xform "Set" (
    payload = @./set_payload.usda@
)
{
    def Xform "Extra" (
        prepend payload = @./set_payload.usda@</Props>
    )
    {
    }
    def Xform "Unloadable" (
        payload = @./missing_payload.usda@
    )
    {
    }
}
`)

	stage := openStage(t, newTestEngine(t), root)
	assert.Equal(t, []string{
		"/Set",
		"/Set/Extra",
		"/Set/Extra/Lamp",
		"/Set/Unloadable",
		"/Set/Table",
	}, primPaths(stage.Traverse()))

	set := stage.PrimAt("/Set")
	require.NotNil(t, set)
	assert.False(t, set.HasAuthoredReferences(), "payloads are not references")
	assert.Empty(t, set.References())
	assert.True(t, stage.PrimAt("/Set/Unloadable").IsValid())
}

func TestStage_PayloadCycle(t *testing.T) {
	dir := t.TempDir()
	root := writeLayer(t, dir, "loop.usda", `(
    defaultPrim = "A"
)
def "A" (
    payload = @./loop.usda@
)
{
}
`)

	stage := openStage(t, newTestEngine(t), root)
	a := stage.PrimAt("/A")
	require.NotNil(t, a)
	assert.False(t, a.IsValid())
}
