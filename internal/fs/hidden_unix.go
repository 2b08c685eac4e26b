//go:build !windows

package fs

// IsHidden reports whether name follows the dotfile convention.
func IsHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// ShouldHideFromListing reports entries that never appear in a listing.
// Nothing qualifies outside Windows.
func ShouldHideFromListing(_, _ string) bool {
	return false
}
