package usda

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("#usda 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolver_Resolve(t *testing.T) {
	root := t.TempDir()
	shotDir := filepath.Join(root, "shot")
	anchor := filepath.Join(shotDir, "shot_root.usda")
	library := filepath.Join(root, "library")

	touch(t, filepath.Join(shotDir, "local.usda"))
	touch(t, filepath.Join(library, "chair.usda"))

	r := NewResolver([]string{library})

	tests := []struct {
		name  string
		asset string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace", "   ", ""},
		{"nul byte", "a\x00b.usda", ""},
		{"remote scheme", "omniverse://server/a.usd", ""},
		{"https scheme", "https://example.com/a.usd", ""},
		{"file scheme", "file:///tmp/x.usda", "/tmp/x.usda"},
		{"absolute cleaned", "/tmp/../tmp/y.usda", "/tmp/y.usda"},
		{"dot relative", "./020_LYR_USD/AssetImport_LYR.usda", filepath.Join(shotDir, "020_LYR_USD", "AssetImport_LYR.usda")},
		{"parent relative", "../010_ASS_USD/asset.usd", filepath.Join(root, "010_ASS_USD", "asset.usd")},
		{"bare found beside anchor", "local.usda", filepath.Join(shotDir, "local.usda")},
		{"bare found on search path", "chair.usda", filepath.Join(library, "chair.usda")},
		{"bare missing falls back to anchor", "nowhere.usda", filepath.Join(shotDir, "nowhere.usda")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(anchor, tt.asset); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.asset, got, tt.want)
			}
		})
	}
}

func TestResolver_EmptyAnchorUsesWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got := NewResolver(nil).Resolve("", "./prop.usda")
	if want := filepath.Join(wd, "prop.usda"); got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestHasDriveLetter(t *testing.T) {
	tests := map[string]bool{
		`C:\assets\a.usd`: true,
		"d:/a.usd":        true,
		"_:/a.usd":        false,
		"ab:/a.usd":       false,
		"a":               false,
	}
	for in, want := range tests {
		if got := hasDriveLetter(in); got != want {
			t.Errorf("hasDriveLetter(%q) = %v, want %v", in, got, want)
		}
	}
}
