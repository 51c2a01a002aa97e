package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/danlite/as3pkg/internal/config"
	"github.com/danlite/as3pkg/internal/debug"
	as3errors "github.com/danlite/as3pkg/internal/errors"
	"github.com/danlite/as3pkg/pkg/pathutil"
)

// WalkFunc receives each file that survives exclusion filtering. path is the
// file's location on disk and rel its slash-separated path below the walked
// root. Returning an error stops the walk.
type WalkFunc func(path, rel string) error

// Walker enumerates files under a directory, pruning excluded directories
// early. Exclusion globs are doublestar patterns matched against
// root-relative slash paths.
type Walker struct {
	exclude          []string
	respectGitignore bool
	followSymlinks   bool
}

// NewWalker creates a walker using the exclusion settings of cfg
func NewWalker(cfg *config.Config) *Walker {
	return &Walker{
		exclude:          append([]string(nil), cfg.Exclude...),
		respectGitignore: cfg.Index.RespectGitignore,
		followSymlinks:   cfg.Index.FollowSymlinks,
	}
}

// Walk calls fn for every non-excluded file below root. A root that does not
// exist or is not a directory yields a *errors.FileError.
func (w *Walker) Walk(ctx context.Context, root string, fn WalkFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		return as3errors.NewFileError("walk", root, err)
	}
	if !info.IsDir() {
		return as3errors.NewFileError("walk", root, fs.ErrInvalid)
	}

	var gitignore *config.GitignoreParser
	if w.respectGitignore {
		gitignore = config.NewGitignoreParser()
		if err := gitignore.LoadGitignore(root); err != nil {
			debug.LogScan("failed to load .gitignore in %s: %v", root, err)
		}
	}

	visited := make(map[string]bool)
	return w.walk(ctx, root, "", gitignore, visited, fn)
}

// walk enumerates dir, whose files are reported below relPrefix. Symlinked
// directories are followed through a recursive call; visited holds resolved
// directories to break cycles.
func (w *Walker) walk(ctx context.Context, dir, relPrefix string, gitignore *config.GitignoreParser, visited map[string]bool, fn WalkFunc) error {
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		debug.LogScan("Skipping unresolvable directory: %s (error: %v)", dir, err)
		return nil
	}
	if visited[realDir] {
		debug.LogScan("Cycle detected, skipping already visited: %s -> %s", dir, realDir)
		return nil
	}
	visited[realDir] = true

	return filepath.WalkDir(realDir, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			debug.LogScan("Scanner error for %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == realDir {
			return nil
		}

		rel := pathutil.ToSlashRelative(path, realDir)
		if relPrefix != "" {
			rel = relPrefix + "/" + rel
		}

		isDir := d.IsDir()
		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				debug.LogScan("Skipping dangling symlink: %s", path)
				return nil
			}
			if target.IsDir() {
				if !w.followSymlinks || w.excluded(rel, true, gitignore) {
					return nil
				}
				return w.walk(ctx, path, rel, gitignore, visited, fn)
			}
		}

		if w.excluded(rel, isDir, gitignore) {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}
		if isDir {
			return nil
		}

		return fn(path, rel)
	})
}

// excluded checks the exclusion globs, then the root's .gitignore
func (w *Walker) excluded(rel string, isDir bool, gitignore *config.GitignoreParser) bool {
	for _, pattern := range w.exclude {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			// A bad pattern shouldn't break scanning
			continue
		}
		if matched {
			return true
		}
		// Directory patterns such as "**/bin-debug/**" also prune the directory itself
		if isDir {
			if matched, _ := doublestar.Match(pattern, rel+"/"); matched {
				return true
			}
		}
	}
	return gitignore != nil && gitignore.ShouldIgnore(rel, isDir)
}
