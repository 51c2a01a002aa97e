package classpath

import (
	"path/filepath"
	"strings"
)

// Normalize converts a file path into a dotted package path.
//
// Each source root, in order, trims the path after the first segment equal
// to that root; later roots see the already trimmed path. A recognized
// extension is then removed, separators become dots and one leading dot is
// dropped. Paths containing no root only lose their extension and
// separators.
//
//	Normalize("/home/me/project/src/com/foo/Bar.as", []string{"src", "lib"}, []string{"as"}) == "com.foo.Bar"
func Normalize(raw string, roots, exts []string) string {
	p := filepath.ToSlash(raw)
	for _, root := range roots {
		p = trimToRoot(p, root)
	}
	p, _ = TrimExtension(p, exts)
	p = strings.ReplaceAll(p, "/", ".")
	return strings.TrimPrefix(p, ".")
}

// trimToRoot removes everything up to and including the first segment equal
// to root.
func trimToRoot(p, root string) string {
	if root == "" {
		return p
	}
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		if seg == root {
			return strings.Join(segments[i+1:], "/")
		}
	}
	return p
}

// TrimExtension strips the first of exts that name ends with. The bool
// reports whether one did.
func TrimExtension(name string, exts []string) (string, bool) {
	for _, ext := range exts {
		suffix := "." + ext
		if len(name) > len(suffix) && strings.HasSuffix(name, suffix) {
			return name[:len(name)-len(suffix)], true
		}
	}
	return name, false
}

// Classify reports Exact when path is word or ends with "."+word.
// Matching is case-sensitive.
func Classify(path, word string) MatchKind {
	if path == word || strings.HasSuffix(path, "."+word) {
		return Exact
	}
	return Partial
}

// ClassName returns the last segment of a dotted path
func ClassName(path string) string {
	return path[strings.LastIndexByte(path, '.')+1:]
}

// PackageName returns everything before the last segment, or "" for a
// top-level class
func PackageName(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[:i]
	}
	return ""
}
