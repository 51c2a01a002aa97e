package scanner

import (
	"context"
	"errors"
	"io/fs"
	"path"

	"github.com/danlite/as3pkg/internal/classpath"
	"github.com/danlite/as3pkg/internal/debug"
)

// ProjectScanner finds class files in the active project
type ProjectScanner struct {
	root   string
	exts   []string
	walker *Walker
}

func NewProjectScanner(root string, exts []string, walker *Walker) *ProjectScanner {
	return &ProjectScanner{root: root, exts: exts, walker: walker}
}

func (s *ProjectScanner) Source() classpath.Source {
	return classpath.SourceProject
}

// Scan reports files whose name matches word, with paths relative to the
// project root. Without a project there is nothing to scan.
func (s *ProjectScanner) Scan(ctx context.Context, word string) ([]classpath.Candidate, error) {
	if s.root == "" {
		return nil, nil
	}

	var candidates []classpath.Candidate
	err := s.walker.Walk(ctx, s.root, func(_, rel string) error {
		if matchFile(rel, word, s.exts) {
			candidates = append(candidates, classpath.Candidate{Source: classpath.SourceProject, Path: rel})
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		debug.LogScan("project root %s does not exist", s.root)
		return nil, nil
	}

	debug.LogScan("project: %d candidates for %q", len(candidates), word)
	return candidates, err
}

// Names returns the stem of every class file in the project
func (s *ProjectScanner) Names(ctx context.Context) ([]string, error) {
	if s.root == "" {
		return nil, nil
	}

	var names []string
	err := s.walker.Walk(ctx, s.root, func(_, rel string) error {
		if stem, ok := classpath.TrimExtension(path.Base(rel), s.exts); ok {
			names = append(names, stem)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return names, err
}
