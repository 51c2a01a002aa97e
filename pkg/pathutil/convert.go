// Package pathutil converts between absolute filesystem paths and the
// root-relative, slash-separated form the resolver normalizes into package
// paths.
package pathutil

import (
	"path/filepath"
	"strings"
)

// ToRelative converts an absolute path to relative based on a root directory.
// Falls back to the original path if conversion fails or path is already relative.
//
// Examples:
//   - ToRelative("/home/me/project/src/com/Foo.as", "/home/me/project") → "src/com/Foo.as"
//   - ToRelative("/other/location/Foo.as", "/home/me/project") → "/other/location/Foo.as" (outside root)
//   - ToRelative("src/Foo.as", "/home/me/project") → "src/Foo.as" (already relative)
func ToRelative(absPath, rootDir string) string {
	if absPath == "" || rootDir == "" {
		return absPath
	}

	if !filepath.IsAbs(absPath) {
		return absPath
	}

	absPath = filepath.Clean(absPath)
	rootDir = filepath.Clean(rootDir)

	relPath, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		// Different volumes on Windows
		return absPath
	}

	// Outside the root: the absolute path is clearer
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return absPath
	}

	return relPath
}

// ToSlashRelative is ToRelative with the result in forward-slash form.
func ToSlashRelative(absPath, rootDir string) string {
	return filepath.ToSlash(ToRelative(absPath, rootDir))
}

// HasSeparator reports whether p contains a path separator, either '/' or
// the OS-specific one.
func HasSeparator(p string) bool {
	return strings.ContainsRune(p, '/') || strings.ContainsRune(p, filepath.Separator)
}
