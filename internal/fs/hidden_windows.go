//go:build windows

package fs

import "syscall"

const (
	fileAttributeHidden       = 0x02
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

func fileAttributes(path string) (uint32, error) {
	ptr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	return syscall.GetFileAttributes(ptr)
}

// IsHidden reports whether the file carries the hidden attribute, falling
// back to the dotfile convention when attributes cannot be read.
func IsHidden(fullPath string, name string) bool {
	attrs, err := fileAttributes(fullPath)
	if err != nil {
		return len(name) > 0 && name[0] == '.'
	}
	return attrs&fileAttributeHidden != 0
}

// ShouldHideFromListing drops system reparse points such as the legacy
// "Documents and Settings" junctions, which cannot be entered anyway.
func ShouldHideFromListing(fullPath, _ string) bool {
	if fullPath == "" {
		return false
	}
	attrs, err := fileAttributes(fullPath)
	if err != nil {
		return false
	}
	const junction = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&junction == junction
}
