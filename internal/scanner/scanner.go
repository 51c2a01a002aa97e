// Package scanner enumerates the three candidate sources of a query: the
// project tree, external library roots and the documentation index.
package scanner

import (
	"context"
	"path"

	"github.com/danlite/as3pkg/internal/classpath"
	"github.com/danlite/as3pkg/internal/config"
)

// Scanner yields raw candidates for a search word. Implementations may
// return the candidates found so far together with an error.
type Scanner interface {
	Source() classpath.Source
	Scan(ctx context.Context, word string) ([]classpath.Candidate, error)
}

// NameLister is implemented by sources that can enumerate every class name
// they know about, independent of a search word.
type NameLister interface {
	Names(ctx context.Context) ([]string, error)
}

// FromConfig builds the scanners for cfg in merge order: project,
// documentation, libraries.
func FromConfig(cfg *config.Config) []Scanner {
	walker := NewWalker(cfg)
	return []Scanner{
		NewProjectScanner(cfg.Project.Root, cfg.Source.Extensions, walker),
		NewDocScanner(cfg.Docs.TOC),
		NewLibraryScanner(cfg.Libraries, cfg.Source.Extensions, walker),
	}
}

// matchFile is the shared per-file filter of the file-backed scanners
func matchFile(rel, word string, exts []string) bool {
	return classpath.MatchFilename(path.Base(rel), word, exts)
}
