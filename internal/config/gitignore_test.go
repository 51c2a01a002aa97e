package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGitignoreParser_BasicPatterns tests single pattern matching
func TestGitignoreParser_BasicPatterns(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		path     string
		isDir    bool
		expected bool
	}{
		{"Simple file match", "Main.swf", "Main.swf", false, true},
		{"Simple file match in subdirectory", "Main.swf", "bin/Main.swf", false, true},
		{"Directory pattern match", "bin-debug/", "bin-debug", true, true},
		{"Directory pattern matches contents", "bin-debug/", "bin-debug/com/App.as", false, true},
		{"Directory pattern no match on file", "bin-debug/", "bin-debug", false, false},
		{"Absolute pattern match", "/build", "build", true, true},
		{"Absolute pattern no match subdirectory", "/build", "src/build", true, false},
		{"Wildcard pattern match", "*.swc", "libs/corelib.swc", false, true},
		{"Wildcard pattern no match", "*.swc", "src/Main.as", false, false},
		{"Double wildcard pattern", "**/*.log", "logs/app.log", false, true},
		{"Double wildcard deep match", "**/*.log", "logs/2023/01/app.log", false, true},
		{"Inner slash anchors", "src/generated", "lib/src/generated", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewGitignoreParser()
			pattern := parser.parsePattern(tt.pattern)

			result := parser.matchesPattern(pattern, tt.path, tt.isDir)
			assert.Equal(t, tt.expected, result, "Pattern: %s, Path: %s, IsDir: %v", tt.pattern, tt.path, tt.isDir)
		})
	}
}

// TestGitignoreParser_Negation tests that later patterns override earlier ones
func TestGitignoreParser_Negation(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		expected bool
	}{
		{"excluded then included", []string{"*.as", "!Keep.as"}, "src/Keep.as", false},
		{"different file still excluded", []string{"*.as", "!Keep.as"}, "src/Other.as", true},
		{"re-excluded after negation", []string{"*.as", "!Keep.as", "src/Keep.as"}, "src/Keep.as", true},
		{"no patterns", nil, "src/Main.as", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewGitignoreParser()
			for _, p := range tt.patterns {
				parser.AddPattern(p)
			}
			assert.Equal(t, tt.expected, parser.ShouldIgnore(tt.path, false))
		})
	}
}

func TestGitignoreParser_LoadFromContent(t *testing.T) {
	content := `# build output
bin-debug/

*.swf
!assets/Keep.swf
`
	parser := NewGitignoreParser()
	require.NoError(t, parser.scanAndParsePatterns(strings.NewReader(content)))
	assert.Equal(t, 3, parser.Len(), "comments and blank lines are skipped")

	assert.True(t, parser.ShouldIgnore("bin-debug/Main.swf", false))
	assert.True(t, parser.ShouldIgnore("out/Main.swf", false))
	assert.False(t, parser.ShouldIgnore("assets/Keep.swf", false))
	assert.False(t, parser.ShouldIgnore("src/Main.as", false))
}

func TestGitignoreParser_LoadGitignore(t *testing.T) {
	dir := t.TempDir()

	parser := NewGitignoreParser()
	require.NoError(t, parser.LoadGitignore(dir), "missing .gitignore is not an error")
	assert.Equal(t, 0, parser.Len())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("generated/\n"), 0o644))
	require.NoError(t, parser.LoadGitignore(dir))
	assert.True(t, parser.ShouldIgnore(filepath.Join("src", "generated"), true))
}

func TestGitignoreParser_EdgeCases(t *testing.T) {
	parser := NewGitignoreParser()
	parser.AddPattern("*")

	assert.False(t, parser.ShouldIgnore("", false), "empty path is never ignored")
	assert.False(t, parser.ShouldIgnore(".", true), "the root itself is never ignored")
	assert.True(t, parser.ShouldIgnore("./Main.as", false))
}
