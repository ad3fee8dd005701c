package workspace

import (
	"path"
	"regexp"
	"strings"
)

// drivePathPattern matches drive-letter-absolute paths after slash
// normalization, e.g. "C:/work/job".
var drivePathPattern = regexp.MustCompile(`^[a-zA-Z]:/.*$`)

// SamePath reports whether actual and expected name the same location.
// Backslashes normalize to forward slashes on both sides. When the
// expected side is drive-letter absolute the comparison is
// case-insensitive (host-OS semantics); otherwise it is exact. The
// client reports paths with different casing conventions depending on
// the host OS, hence the dual rule.
func SamePath(actual, expected string) bool {
	actualFixed := strings.ReplaceAll(actual, "\\", "/")
	expectedFixed := strings.ReplaceAll(expected, "\\", "/")

	if drivePathPattern.MatchString(expectedFixed) {
		return strings.EqualFold(actualFixed, expectedFixed)
	}
	return actualFixed == expectedFixed
}

// IsAbsolutePath reports whether p is absolute in either flavor the
// client reports: rooted, or drive-letter absolute.
func IsAbsolutePath(p string) bool {
	fixed := strings.ReplaceAll(p, "\\", "/")
	return strings.HasPrefix(fixed, "/") || drivePathPattern.MatchString(fixed)
}

// ParentPath returns the directory containing p, without a trailing
// separator, after slash normalization.
func ParentPath(p string) string {
	return path.Dir(strings.ReplaceAll(p, "\\", "/"))
}

// FindByPath returns the workspace bound exactly to target, or nil.
func FindByPath(workspaces []Workspace, target string) *Workspace {
	for i := range workspaces {
		if SamePath(workspaces[i].Path, target) {
			return &workspaces[i]
		}
	}
	return nil
}

// FindInsidePath returns every workspace whose parent directory equals
// target. This is a one-level containment check, not a subtree walk:
// the reconciliation invariant only needs direct children because any
// deeper workspace has its own conflicting ancestor chain.
func FindInsidePath(workspaces []Workspace, target string) []Workspace {
	var result []Workspace
	for _, wk := range workspaces {
		if SamePath(ParentPath(wk.Path), target) {
			result = append(result, wk)
		}
	}
	return result
}
