package scanner

import (
	"context"
	"errors"
	"io/fs"

	"github.com/danlite/as3pkg/internal/classpath"
	"github.com/danlite/as3pkg/internal/debug"
	as3errors "github.com/danlite/as3pkg/internal/errors"
)

// LibraryScanner finds class files under external library roots. Paths are
// reported relative to their library root so libraries never collide on a
// shared filesystem prefix.
type LibraryScanner struct {
	roots  []string
	exts   []string
	walker *Walker
}

func NewLibraryScanner(roots, exts []string, walker *Walker) *LibraryScanner {
	return &LibraryScanner{roots: roots, exts: exts, walker: walker}
}

func (s *LibraryScanner) Source() classpath.Source {
	return classpath.SourceLibrary
}

// Scan walks each library root in configured order. Missing roots are
// skipped; other walk failures are collected and returned alongside the
// candidates from the roots that succeeded.
func (s *LibraryScanner) Scan(ctx context.Context, word string) ([]classpath.Candidate, error) {
	var candidates []classpath.Candidate
	var errs []error

	for _, root := range s.roots {
		err := s.walker.Walk(ctx, root, func(_, rel string) error {
			if matchFile(rel, word, s.exts) {
				candidates = append(candidates, classpath.Candidate{Source: classpath.SourceLibrary, Path: rel})
			}
			return nil
		})
		switch {
		case err == nil:
		case ctx.Err() != nil:
			return candidates, ctx.Err()
		case errors.Is(err, fs.ErrNotExist):
			debug.LogScan("library root %s does not exist, skipping", root)
		default:
			errs = append(errs, err)
		}
	}

	debug.LogScan("libraries: %d candidates for %q across %d roots", len(candidates), word, len(s.roots))
	return candidates, as3errors.NewMultiError(errs).ErrOrNil()
}
