package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/danlite/as3pkg/internal/debug"
)

// Names of the configuration files looked up in the home and project directories
const (
	KDLFileName  = ".as3pkg.kdl"
	TOMLFileName = ".as3pkg.toml"
)

// DefaultSourceDir is the directory under the project root used as the
// fallback location when listing a package that does not exist as given.
const DefaultSourceDir = "src"

// Suggestion defaults
const (
	DefaultSuggestThreshold = 0.8
	DefaultSuggestMax       = 5
)

// Environment variables read by ApplyEnv. Each key has a legacy TextMate alias
// that is consulted when the primary key is unset.
const (
	EnvSourceDirs   = "AS3PKG_SRC_DIRS"
	EnvExternalSrcs = "AS3PKG_EXTERNAL_SRCS"
	EnvProjectDir   = "AS3PKG_PROJECT_DIR"
	EnvDocTOC       = "AS3PKG_DOC_TOC"

	legacyEnvSourceDirs   = "TM_AS3_USUAL_SRC_DIRS"
	legacyEnvExternalSrcs = "TM_AS3_EXTERNAL_SRCS"
	legacyEnvProjectDir   = "TM_PROJECT_DIRECTORY"
)

type Config struct {
	Version   int      `toml:"version" json:"version" yaml:"version"`
	Project   Project  `toml:"project" json:"project" yaml:"project"`
	Source    Source   `toml:"source" json:"source" yaml:"source"`
	Libraries []string `toml:"libraries" json:"libraries" yaml:"libraries"`
	Docs      Docs     `toml:"docs" json:"docs" yaml:"docs"`
	Index     Index    `toml:"index" json:"index" yaml:"index"`
	Suggest   Suggest  `toml:"suggest" json:"suggest" yaml:"suggest"`
	Exclude   []string `toml:"exclude" json:"exclude" yaml:"exclude"`
}

type Project struct {
	Root string `toml:"root" json:"root" yaml:"root"` // empty: no project, project scanner yields nothing
	Name string `toml:"name" json:"name,omitempty" yaml:"name,omitempty"`
}

type Source struct {
	Roots      []string `toml:"roots" json:"roots" yaml:"roots"`                // directory names marking the top of package paths
	Extensions []string `toml:"extensions" json:"extensions" yaml:"extensions"` // class file extensions without the dot
}

type Docs struct {
	TOC string `toml:"toc" json:"toc" yaml:"toc"` // documentation table-of-contents file
}

type Index struct {
	RespectGitignore bool `toml:"respect_gitignore" json:"respect_gitignore" yaml:"respect_gitignore"`
	FollowSymlinks   bool `toml:"follow_symlinks" json:"follow_symlinks" yaml:"follow_symlinks"`
}

type Suggest struct {
	Enabled   bool    `toml:"enabled" json:"enabled" yaml:"enabled"`
	Threshold float64 `toml:"threshold" json:"threshold" yaml:"threshold"` // Jaro-Winkler similarity, 0..1
	Max       int     `toml:"max" json:"max" yaml:"max"`
}

// DefaultSourceRoots returns the source directory names used when none are configured
func DefaultSourceRoots() []string {
	return []string{"src", "lib", "source", "test"}
}

// DefaultExtensions returns the recognized class file extensions
func DefaultExtensions() []string {
	return []string{"as", "mxml"}
}

// DefaultTOCPath locates the documentation index relative to the running
// executable: <bin>/../data/doc_dictionary.xml.
func DefaultTOCPath() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("data", "doc_dictionary.xml")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", "data", "doc_dictionary.xml")
}

// Default returns a configuration with every option at its documented default.
func Default() *Config {
	return &Config{
		Version: 1,
		Source: Source{
			Roots:      DefaultSourceRoots(),
			Extensions: DefaultExtensions(),
		},
		Libraries: []string{},
		Docs:      Docs{TOC: DefaultTOCPath()},
		Index:     Index{RespectGitignore: true},
		Suggest: Suggest{
			Enabled:   true,
			Threshold: DefaultSuggestThreshold,
			Max:       DefaultSuggestMax,
		},
		Exclude: defaultExclusions(),
	}
}

func defaultExclusions() []string {
	return []string{
		// VCS metadata
		"**/.git/**",
		"**/.svn/**",
		"**/.hg/**",

		// Compiled output from Flash Builder, FlashDevelop and Flex SDK builds
		"**/bin-debug/**",
		"**/bin-release/**",
		"**/html-template/**",
		"**/*.swf",
		"**/*.swc",

		// Package managers & dependencies
		"**/node_modules/**",

		// Editor temp files
		"**/*.swp",
		"**/*~",
	}
}

// Load builds the effective configuration for a project directory:
// defaults, then ~/.as3pkg.kdl, then the project's .as3pkg.kdl (or
// .as3pkg.toml), then environment overrides. CLI flags are applied by the
// caller on top of the result.
func Load(rootDir string) (*Config, error) {
	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		if _, err := applyFile(cfg, homeDir); err != nil {
			return nil, err
		}
	}

	searchDir := "."
	if rootDir != "" {
		searchDir = rootDir
	}
	absSearch, err := filepath.Abs(searchDir)
	if err != nil {
		absSearch = searchDir
	}
	if absSearch != homeDir {
		found, err := applyFile(cfg, absSearch)
		if err != nil {
			return nil, err
		}
		if found && cfg.Project.Root == "" {
			// A project config file marks its directory as the project root
			cfg.Project.Root = absSearch
		}
	}

	ApplyEnv(cfg, os.LookupEnv)
	cfg.EnrichExclusionsWithBuildArtifacts()

	return cfg, nil
}

// applyFile overlays the KDL or TOML config found in dir onto cfg.
func applyFile(cfg *Config, dir string) (bool, error) {
	found, err := LoadKDL(dir, cfg)
	if err != nil || found {
		return found, err
	}
	return LoadTOML(dir, cfg)
}

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg from environment-style variables.
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	if v, ok := lookupFirst(lookup, EnvSourceDirs, legacyEnvSourceDirs); ok {
		if roots := SplitList(v); len(roots) > 0 {
			cfg.Source.Roots = roots
		}
	}
	if v, ok := lookupFirst(lookup, EnvExternalSrcs, legacyEnvExternalSrcs); ok {
		cfg.Libraries = SplitList(v)
	}
	if v, ok := lookupFirst(lookup, EnvProjectDir, legacyEnvProjectDir); ok {
		cfg.Project.Root = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvDocTOC); ok && v != "" {
		cfg.Docs.TOC = v
	}
	debug.LogConfig("env applied: roots=%v libraries=%v project=%q", cfg.Source.Roots, cfg.Libraries, cfg.Project.Root)
}

func lookupFirst(lookup LookupFunc, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// SplitList splits a colon separated (';' on Windows) list, dropping empty entries.
func SplitList(s string) []string {
	parts := filepath.SplitList(s)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// EnrichExclusionsWithBuildArtifacts detects build output directories from
// project descriptors and adds them to the exclusion list
func (c *Config) EnrichExclusionsWithBuildArtifacts() {
	if !c.HasProject() {
		return
	}

	detector := NewBuildArtifactDetector(c.Project.Root)
	if detected := detector.DetectOutputDirectories(); len(detected) > 0 {
		c.Exclude = DeduplicatePatterns(append(c.Exclude, detected...))
	}
}

// HasProject reports whether a project root is configured
func (c *Config) HasProject() bool {
	return c.Project.Root != ""
}

// DeduplicatePatterns removes duplicate patterns, keeping the first occurrence
func DeduplicatePatterns(patterns []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		if !seen[pattern] {
			seen[pattern] = true
			result = append(result, pattern)
		}
	}

	return result
}
