package usda

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/usdcheck/pkg/fileutil"
)

// Resolver maps authored asset paths to filesystem paths.
type Resolver struct {
	searchPaths []string
}

// NewResolver creates a resolver that falls back to searchPaths for bare
// relative asset paths.
func NewResolver(searchPaths []string) *Resolver {
	return &Resolver{searchPaths: searchPaths}
}

// Resolve returns the filesystem path for assetPath authored in the layer
// at anchor. An empty anchor anchors to the working directory. It returns ""
// when the asset path cannot be resolved.
func (r *Resolver) Resolve(anchor, assetPath string) string {
	p, ok := normalizeAssetPath(assetPath)
	if !ok {
		return ""
	}

	if isAbsPath(p) {
		return filepath.Clean(p)
	}

	dir := anchorDir(anchor)
	anchored := filepath.Join(dir, filepath.FromSlash(p))
	if isAnchoredRelative(p) {
		return anchored
	}

	if fileutil.Exists(anchored) {
		return anchored
	}
	for _, sp := range r.searchPaths {
		candidate := filepath.Join(sp, filepath.FromSlash(p))
		if fileutil.Exists(candidate) {
			return candidate
		}
	}
	return anchored
}

// normalizeAssetPath strips surrounding whitespace and a file:// scheme.
// Other URI schemes are reported as unresolvable.
func normalizeAssetPath(assetPath string) (string, bool) {
	p := strings.TrimSpace(assetPath)
	if p == "" || strings.ContainsRune(p, 0) {
		return "", false
	}
	if rest, ok := strings.CutPrefix(p, "file://"); ok {
		return rest, rest != ""
	}
	if scheme, _, ok := strings.Cut(p, ":"); ok && len(scheme) > 1 && isScheme(scheme) {
		return "", false
	}
	return p, true
}

// isScheme reports whether s has the form of a URI scheme. Single letters
// are excluded so that drive letters are treated as paths.
func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isIdentStart(c) && c != '_':
		case i > 0 && (isDigit(c) || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

func isAbsPath(p string) bool {
	return filepath.IsAbs(p) || strings.HasPrefix(p, "/") || hasDriveLetter(p)
}

func hasDriveLetter(p string) bool {
	return len(p) > 1 && p[1] == ':' && isIdentStart(p[0]) && p[0] != '_'
}

func isAnchoredRelative(p string) bool {
	return strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") ||
		strings.HasPrefix(p, `.\`) || strings.HasPrefix(p, `..\`)
}

func anchorDir(anchor string) string {
	if anchor == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return "."
	}
	return filepath.Dir(anchor)
}
