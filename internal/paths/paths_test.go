package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	home, err := ResolveHome()
	if err != nil {
		t.Fatalf("ResolveHome() error = %v", err)
	}
	if home != "/home/tester" {
		t.Errorf("ResolveHome() = %q, want /home/tester", home)
	}
}

func TestAppConfigDir(t *testing.T) {
	dir := AppConfigDir()
	if !strings.HasSuffix(dir, AppName) {
		t.Errorf("AppConfigDir() = %q, want suffix %q", dir, AppName)
	}
	if filepath.Dir(dir) != ConfigHome() {
		t.Errorf("AppConfigDir() parent = %q, want %q", filepath.Dir(dir), ConfigHome())
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		in   string
		want string
	}{
		{"~/assets", "/home/tester/assets"},
		{"~", "/home/tester"},
		{"/abs/assets", "/abs/assets"},
		{"relative/assets", "relative/assets"},
		{"~other/assets", "~other/assets"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExpandHome(tt.in); got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
