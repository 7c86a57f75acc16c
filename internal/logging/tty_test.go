package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
)

func TestColorAllowed(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		noColor bool
		tty     bool
		want    bool
	}{
		{"terminal", nil, false, true, true},
		{"not a terminal", nil, false, false, false},
		{"--no-color", nil, true, true, false},
		{"NO_COLOR", map[string]string{"NO_COLOR": ""}, false, true, false},
		{"TERM=dumb", map[string]string{"TERM": "dumb"}, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := color.NoColor
			t.Cleanup(func() { color.NoColor = orig })
			color.NoColor = tt.noColor

			t.Setenv("TERM", "xterm-256color")
			// Setenv restores NO_COLOR after the test; the value itself is dropped.
			t.Setenv("NO_COLOR", "")
			os.Unsetenv("NO_COLOR")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := colorAllowed(tt.tty); got != tt.want {
				t.Errorf("colorAllowed(%v) = %v, want %v", tt.tty, got, tt.want)
			}
		})
	}
}

func TestSupportsColor_Buffer(t *testing.T) {
	if SupportsColor(&bytes.Buffer{}) {
		t.Error("a buffer is never a terminal")
	}
}
