package classpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	defaultRoots = []string{"src", "lib", "source", "test"}
	defaultExts  = []string{"as", "mxml"}
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		roots []string
		want  string
	}{
		{"project path", "/home/me/project/src/com/foo/Bar.as", []string{"src", "lib"}, "com.foo.Bar"},
		{"relative path", "src/com/foo/Bar.mxml", defaultRoots, "com.foo.Bar"},
		{"no root", "com/foo/Bar.as", defaultRoots, "com.foo.Bar"},
		{"leading slash without root", "/com/foo/Bar.as", nil, "com.foo.Bar"},
		{"root must be a whole segment", "/work/srcs/com/Bar.as", []string{"src"}, "work.srcs.com.Bar"},
		{"first occurrence per root", "/a/src/com/src/Bar.as", []string{"src"}, "com.src.Bar"},
		{"roots applied in sequence", "/a/src/lib/org/Bar.as", []string{"src", "lib"}, "org.Bar"},
		{"later root sees trimmed path", "/x/lib/y/src/org/Bar.as", []string{"src", "lib"}, "org.Bar"},
		{"top level class", "/p/src/Main.as", defaultRoots, "Main"},
		{"unknown extension kept", "/p/src/notes.txt", defaultRoots, "notes.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, tt.roots, defaultExts)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "/")
			assert.NotEqual(t, byte('.'), firstByte(got))
		})
	}
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}

func TestTrimExtension(t *testing.T) {
	stem, ok := TrimExtension("Sprite.as", defaultExts)
	assert.True(t, ok)
	assert.Equal(t, "Sprite", stem)

	stem, ok = TrimExtension("App.mxml", defaultExts)
	assert.True(t, ok)
	assert.Equal(t, "App", stem)

	_, ok = TrimExtension("Sprite.AS", defaultExts)
	assert.False(t, ok, "extensions are case-sensitive")

	_, ok = TrimExtension(".as", defaultExts)
	assert.False(t, ok, "a bare extension has no stem")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		word string
		want MatchKind
	}{
		{"flash.display.Sprite", "Sprite", Exact},
		{"Sprite", "Sprite", Exact},
		{"flash.display.SpriteHelper", "Sprite", Partial},
		{"flash.display.MySprite", "Sprite", Partial},
		{"sprite.Other", "sprite", Partial},
		{"flash.display.sprite", "Sprite", Partial},
	}
	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path, tt.word))
		})
	}
}

func TestExactFilenameProperty(t *testing.T) {
	for _, word := range []string{"Sprite", "Event", "A", "URLLoader", "x_1"} {
		raw := "/home/me/project/src/com/example/" + word + ".as"
		assert.True(t, MatchFilename(word+".as", word, defaultExts))

		path := Normalize(raw, defaultRoots, defaultExts)
		assert.Equal(t, word, ClassName(path))
		assert.Equal(t, Exact, Classify(path, word))

		helper := Normalize("/p/src/com/"+word+"Helper.as", defaultRoots, defaultExts)
		assert.True(t, MatchFilename(word+"Helper.as", word, defaultExts))
		assert.Equal(t, Partial, Classify(helper, word))
	}
}

func TestClassNameAndPackageName(t *testing.T) {
	assert.Equal(t, "Sprite", ClassName("flash.display.Sprite"))
	assert.Equal(t, "flash.display", PackageName("flash.display.Sprite"))
	assert.Equal(t, "Main", ClassName("Main"))
	assert.Equal(t, "", PackageName("Main"))
}
