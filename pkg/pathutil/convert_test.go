package pathutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestToRelative(t *testing.T) {
	tests := []struct {
		name     string
		absPath  string
		rootDir  string
		expected string
	}{
		{
			name:     "simple relative path",
			absPath:  "/home/me/project/src/com/foo/Bar.as",
			rootDir:  "/home/me/project",
			expected: "src/com/foo/Bar.as",
		},
		{
			name:     "root level file",
			absPath:  "/home/me/project/Main.as",
			rootDir:  "/home/me/project",
			expected: "Main.as",
		},
		{
			name:     "same directory",
			absPath:  "/home/me/project",
			rootDir:  "/home/me/project",
			expected: ".",
		},
		{
			name:     "already relative path",
			absPath:  "src/Main.as",
			rootDir:  "/home/me/project",
			expected: "src/Main.as",
		},
		{
			name:     "path outside root - fallback to absolute",
			absPath:  "/other/location/Bar.as",
			rootDir:  "/home/me/project",
			expected: "/other/location/Bar.as",
		},
		{
			name:     "sibling with dotted name stays relative",
			absPath:  "/home/me/project/..hidden/Bar.as",
			rootDir:  "/home/me/project",
			expected: "..hidden/Bar.as",
		},
		{
			name:     "empty root directory",
			absPath:  "/home/me/project/Bar.as",
			rootDir:  "",
			expected: "/home/me/project/Bar.as",
		},
		{
			name:     "empty absolute path",
			absPath:  "",
			rootDir:  "/home/me/project",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if runtime.GOOS == "windows" {
				t.Skip("unix path fixtures")
			}
			result := ToRelative(tt.absPath, tt.rootDir)
			if result != tt.expected {
				t.Errorf("ToRelative() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestToSlashRelative(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "opt", "lib")
	abs := filepath.Join(root, "com", "adobe", "Foo.as")

	if got := ToSlashRelative(abs, root); got != "com/adobe/Foo.as" {
		t.Errorf("ToSlashRelative() = %q, want com/adobe/Foo.as", got)
	}
}

func TestHasSeparator(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"com.foo.bar", false},
		{"com/foo/bar", true},
		{"Bar", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasSeparator(tt.in); got != tt.want {
			t.Errorf("HasSeparator(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
