// Package testhelpers provides shared utilities for testing as3pkg
package testhelpers

import (
	"github.com/danlite/as3pkg/internal/config"
)

// TestConfigBuilder provides a fluent API for building test configs with safe defaults
// Usage:
//
//	cfg := testhelpers.NewTestConfigBuilder(projectPath).
//		WithLibraries(libRoot).
//		WithTOC(tocPath).
//		Build()
type TestConfigBuilder struct {
	projectRoot string
	roots       []string
	extensions  []string
	libraries   []string
	toc         string
	exclusions  []string
	gitignore   bool
	suggest     bool
}

// NewTestConfigBuilder creates a config builder with safe defaults for a project path.
// An empty projectRoot builds a config without project context.
func NewTestConfigBuilder(projectRoot string) *TestConfigBuilder {
	return &TestConfigBuilder{
		projectRoot: projectRoot,
		roots:       config.DefaultSourceRoots(),
		extensions:  config.DefaultExtensions(),
		exclusions: []string{
			"**/.git/**",
			"**/bin-debug/**",
		},
		suggest: true,
	}
}

// WithSourceRoots replaces the source root names
func (b *TestConfigBuilder) WithSourceRoots(roots ...string) *TestConfigBuilder {
	b.roots = roots
	return b
}

// WithLibraries sets the external library roots
func (b *TestConfigBuilder) WithLibraries(roots ...string) *TestConfigBuilder {
	b.libraries = roots
	return b
}

// WithTOC sets the documentation index path
func (b *TestConfigBuilder) WithTOC(path string) *TestConfigBuilder {
	b.toc = path
	return b
}

// WithExclusions adds additional exclusion patterns
func (b *TestConfigBuilder) WithExclusions(patterns ...string) *TestConfigBuilder {
	b.exclusions = append(b.exclusions, patterns...)
	return b
}

// WithGitignore enables .gitignore handling (disabled by default for tests)
func (b *TestConfigBuilder) WithGitignore() *TestConfigBuilder {
	b.gitignore = true
	return b
}

// WithoutSuggestions disables not-found suggestions
func (b *TestConfigBuilder) WithoutSuggestions() *TestConfigBuilder {
	b.suggest = false
	return b
}

// Build creates the final test config with all settings. A missing TOC
// points at a path that does not exist so tests never read an installed index.
func (b *TestConfigBuilder) Build() *config.Config {
	toc := b.toc
	if toc == "" {
		toc = "/nonexistent/as3pkg/doc_dictionary.xml"
	}

	return &config.Config{
		Version: 1,
		Project: config.Project{
			Root: b.projectRoot,
			Name: "test-project",
		},
		Source: config.Source{
			Roots:      append([]string(nil), b.roots...),
			Extensions: append([]string(nil), b.extensions...),
		},
		Libraries: append([]string(nil), b.libraries...),
		Docs:      config.Docs{TOC: toc},
		Index: config.Index{
			RespectGitignore: b.gitignore,
			FollowSymlinks:   false,
		},
		Suggest: config.Suggest{
			Enabled:   b.suggest,
			Threshold: config.DefaultSuggestThreshold,
			Max:       config.DefaultSuggestMax,
		},
		Exclude: append([]string(nil), b.exclusions...),
	}
}
