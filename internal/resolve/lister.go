package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/danlite/as3pkg/internal/classpath"
	"github.com/danlite/as3pkg/internal/config"
	"github.com/danlite/as3pkg/internal/debug"
	"github.com/danlite/as3pkg/pkg/pathutil"
)

// Lister lists the classes directly inside a package directory
type Lister struct {
	projectRoot string
	exts        []string
}

func NewLister(cfg *config.Config) *Lister {
	return &Lister{projectRoot: cfg.Project.Root, exts: cfg.Source.Extensions}
}

// ListPackage accepts a package declaration ("com.foo.*") or a directory
// path. A path that does not exist is retried under <project>/src. The
// bool is false when no directory could be read; that is an ordinary
// outcome, not an error.
func (l *Lister) ListPackage(path string) ([]string, bool) {
	path = strings.TrimSpace(path)
	if !pathutil.HasSeparator(path) {
		path = strings.ReplaceAll(path, ".", "/")
	}
	path = strings.TrimSuffix(path, "/*")
	dir := filepath.FromSlash(path)

	if !exists(dir) {
		if l.projectRoot == "" {
			return nil, false
		}
		dir = filepath.Join(l.projectRoot, config.DefaultSourceDir, dir)
		if !exists(dir) {
			return nil, false
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		debug.LogResolve("cannot list %s: %v", dir, err)
		return nil, false
	}

	classes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if stem, ok := classpath.TrimExtension(entry.Name(), l.exts); ok {
			classes = append(classes, stem)
		}
	}
	return classes, true
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
