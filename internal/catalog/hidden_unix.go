//go:build !windows

package catalog

// isHidden treats dot-files as hidden on Unix-like systems.
func isHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// isProtected is a Windows concept; nothing is protected here.
func isProtected(_, _ string) bool {
	return false
}
