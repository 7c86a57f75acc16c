package check

import (
	"strings"

	"github.com/thoreinstein/usdcheck/internal/validator"
)

// Mode selects the rule subset applied to a file.
type Mode int

const (
	// ModeAsset validates a reusable asset file.
	ModeAsset Mode = iota
	// ModeScene validates a root file that composes layers.
	ModeScene
)

func (m Mode) String() string {
	if m == ModeScene {
		return "scene"
	}
	return "asset"
}

// Subject is the capitalized mode name used in summary lines.
func (m Mode) Subject() string {
	s := m.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// fileNoun names the validated file in fatal messages.
func (m Mode) fileNoun() string {
	if m == ModeScene {
		return "Root file"
	}
	return "Asset file"
}

// openNoun names the validated file when the engine rejects it.
func (m Mode) openNoun() string {
	if m == ModeScene {
		return "root file"
	}
	return "USD file"
}

// sublayerSeverity is the severity of unresolvable or missing sublayers.
func (m Mode) sublayerSeverity() validator.Severity {
	if m == ModeScene {
		return validator.SeverityError
	}
	return validator.SeverityWarning
}
