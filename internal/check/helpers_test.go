package check

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/usdcheck/internal/logging"
	"github.com/thoreinstein/usdcheck/internal/scene"
	"github.com/thoreinstein/usdcheck/internal/scene/mocks"
	"github.com/thoreinstein/usdcheck/internal/usda"
	"github.com/thoreinstein/usdcheck/internal/validator"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return logging.NewContext(context.Background(), logging.ForTest(t))
}

func newTestValidator(t *testing.T, engine scene.Engine, opts ...Option) (*Validator, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	return NewValidator(engine, append([]Option{WithOutput(&buf)}, opts...)...), &buf
}

func newTestEngine(t *testing.T) *usda.Engine {
	t.Helper()
	return usda.NewEngine(usda.WithLogger(logging.ForTest(t)))
}

// writeLayer writes a text layer under dir and returns its path.
func writeLayer(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#usda 1.0\n"+content), 0o644))
	return path
}

func messages(findings []validator.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}

// requireConsistent checks that Passed is derived from Error findings only.
func requireConsistent(t *testing.T, r *validator.Result) {
	t.Helper()
	hasError := false
	for _, f := range r.Findings() {
		if f.Severity == validator.SeverityError {
			hasError = true
		}
	}
	require.Equal(t, !hasError, r.Passed())
}

func mockLayer(t *testing.T, sublayers []string, resolved map[string]string) *mocks.MockLayer {
	t.Helper()
	l := mocks.NewMockLayer(t)
	l.EXPECT().Identifier().Return("/mock/root.usda").Maybe()
	l.EXPECT().SubLayerPaths().Return(sublayers).Maybe()
	l.EXPECT().ResolvePath(mock.Anything).RunAndReturn(func(p string) string {
		return resolved[p]
	}).Maybe()
	return l
}

func mockStage(t *testing.T, root scene.Layer, prims []scene.Prim, defaultPrim scene.Prim) *mocks.MockStage {
	t.Helper()
	st := mocks.NewMockStage(t)
	st.EXPECT().RootLayer().Return(root).Maybe()
	st.EXPECT().Traverse().Return(prims).Maybe()
	st.EXPECT().DefaultPrim().Return(defaultPrim).Maybe()
	return st
}

func mockPrim(t *testing.T, path string, valid bool, refs ...scene.Reference) *mocks.MockPrim {
	t.Helper()
	p := mocks.NewMockPrim(t)
	p.EXPECT().Path().Return(path).Maybe()
	p.EXPECT().IsValid().Return(valid).Maybe()
	if valid {
		p.EXPECT().HasAuthoredReferences().Return(len(refs) > 0).Maybe()
		p.EXPECT().References().Return(refs).Maybe()
	}
	return p
}

// existingFile creates an empty file so that existence checks pass.
func existingFile(t *testing.T, name string) string {
	t.Helper()
	return writeLayer(t, t.TempDir(), name, "")
}
