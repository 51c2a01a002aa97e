package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Fixture is a throwaway directory tree for scanner and resolver tests
type Fixture struct {
	t    testing.TB
	Root string
}

// NewFixture creates an empty fixture under t.TempDir()
func NewFixture(t testing.TB) *Fixture {
	t.Helper()
	return &Fixture{t: t, Root: t.TempDir()}
}

// Path joins slash-separated rel onto the fixture root
func (f *Fixture) Path(rel string) string {
	return filepath.Join(f.Root, filepath.FromSlash(rel))
}

// AddFile writes a file, creating parent directories
func (f *Fixture) AddFile(rel, content string) *Fixture {
	f.t.Helper()
	p := f.Path(rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		f.t.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		f.t.Fatalf("write %s: %v", p, err)
	}
	return f
}

// AddClasses writes an empty class file for each slash-separated path
func (f *Fixture) AddClasses(rels ...string) *Fixture {
	f.t.Helper()
	for _, rel := range rels {
		f.AddFile(rel, "package {}\n")
	}
	return f
}

// AddDir creates an empty directory
func (f *Fixture) AddDir(rel string) *Fixture {
	f.t.Helper()
	if err := os.MkdirAll(f.Path(rel), 0o755); err != nil {
		f.t.Fatalf("mkdir %s: %v", rel, err)
	}
	return f
}

// WriteTOC writes a documentation index with one <topic> line per link
// and returns its path
func (f *Fixture) WriteTOC(rel string, links ...string) string {
	f.t.Helper()
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<toc>\n")
	for _, link := range links {
		b.WriteString("  <topic label=\"\" href='" + link + "'/>\n")
	}
	b.WriteString("</toc>\n")
	f.AddFile(rel, b.String())
	return f.Path(rel)
}
