package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GitignoreParser handles parsing and matching .gitignore files
type GitignoreParser struct {
	patterns []GitignorePattern
}

type GitignorePattern struct {
	Pattern   string
	Negate    bool
	Directory bool
	Absolute  bool

	glob string // doublestar form of Pattern
}

// NewGitignoreParser creates a new gitignore parser
func NewGitignoreParser() *GitignoreParser {
	return &GitignoreParser{
		patterns: make([]GitignorePattern, 0),
	}
}

// LoadGitignore loads patterns from the .gitignore file in rootPath.
// A missing file is not an error.
func (gp *GitignoreParser) LoadGitignore(rootPath string) error {
	file, err := os.Open(filepath.Join(rootPath, ".gitignore"))
	if err != nil {
		return nil
	}
	defer file.Close()

	return gp.scanAndParsePatterns(file)
}

func (gp *GitignoreParser) scanAndParsePatterns(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		gp.patterns = append(gp.patterns, gp.parsePattern(line))
	}
	return scanner.Err()
}

// AddPattern adds a single gitignore line to the parser
func (gp *GitignoreParser) AddPattern(line string) {
	gp.patterns = append(gp.patterns, gp.parsePattern(line))
}

// Len returns the number of loaded patterns
func (gp *GitignoreParser) Len() int {
	return len(gp.patterns)
}

// parsePattern converts a gitignore line into a doublestar glob.
// Patterns without an inner slash match at any depth.
func (gp *GitignoreParser) parsePattern(line string) GitignorePattern {
	pattern := GitignorePattern{}

	if strings.HasPrefix(line, "!") {
		pattern.Negate = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		pattern.Directory = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		pattern.Absolute = true
		line = line[1:]
	}

	pattern.Pattern = line
	if pattern.Absolute || strings.Contains(line, "/") {
		pattern.glob = line
	} else {
		pattern.glob = "**/" + line
	}
	return pattern
}

// ShouldIgnore reports whether relPath (relative to the gitignore's
// directory) is excluded. Later patterns override earlier ones.
func (gp *GitignoreParser) ShouldIgnore(relPath string, isDir bool) bool {
	relPath = strings.TrimPrefix(filepath.ToSlash(relPath), "./")
	if relPath == "" || relPath == "." {
		return false
	}

	ignored := false
	for _, p := range gp.patterns {
		if gp.matchesPattern(p, relPath, isDir) {
			ignored = !p.Negate
		}
	}
	return ignored
}

// matchesPattern tests the path and each of its parent directories, since a
// pattern matching a directory excludes everything below it.
func (gp *GitignoreParser) matchesPattern(p GitignorePattern, relPath string, isDir bool) bool {
	segments := strings.Split(relPath, "/")
	for i := len(segments); i >= 1; i-- {
		candidateIsDir := i < len(segments) || isDir
		if p.Directory && !candidateIsDir {
			continue
		}
		candidate := strings.Join(segments[:i], "/")
		if ok, err := doublestar.Match(p.glob, candidate); err == nil && ok {
			return true
		}
	}
	return false
}
