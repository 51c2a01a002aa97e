package classpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchFilename(t *testing.T) {
	tests := []struct {
		name string
		file string
		word string
		want bool
	}{
		{"exact", "Sprite.as", "Sprite", true},
		{"mxml", "Sprite.mxml", "Sprite", true},
		{"trailing identifier chars", "SpriteHelper.as", "Sprite", true},
		{"trailing underscore and digits", "Sprite_2.as", "Sprite", true},
		{"no boundary before word", "MySprite.as", "Sprite", false},
		{"boundary after punctuation", "my-Sprite.as", "Sprite", true},
		{"boundary after dot", "Foo.Sprite.as", "Sprite", true},
		{"non identifier after word", "Sprite-old.as", "Sprite", false},
		{"case sensitive", "sprite.as", "Sprite", false},
		{"unrecognized extension", "Sprite.txt", "Sprite", false},
		{"no extension", "Sprite", "Sprite", false},
		{"empty word", "Sprite.as", "", false},
		{"word longer than stem", "Sp.as", "Sprite", false},
		{"later occurrence satisfies", "Event-Event.as", "Event", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchFilename(tt.file, tt.word, defaultExts))
		})
	}
}

func TestMatchDocLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		word     string
		wantPath string
		wantOK   bool
	}{
		{
			name:     "class link",
			line:     `<topic label="Sprite" href='flash/display/Sprite.html'/>`,
			word:     "Sprite",
			wantPath: "flash.display.Sprite",
			wantOK:   true,
		},
		{
			name:     "class link partial",
			line:     `<topic href='flash/display/SpriteHelper.html'/>`,
			word:     "Sprite",
			wantPath: "flash.display.SpriteHelper",
			wantOK:   true,
		},
		{
			name:   "class link without boundary",
			line:   `<topic href='mx/core/UISprite.html'/>`,
			word:   "Sprite",
			wantOK: false,
		},
		{
			name:     "top level class link",
			line:     `<topic href='Array.html'/>`,
			word:     "Array",
			wantPath: "Array",
			wantOK:   true,
		},
		{
			name:     "package member link",
			line:     `<topic href='flash/utils/package.html#getTimer()'/>`,
			word:     "getTimer",
			wantPath: "flash.utils.getTimer",
			wantOK:   true,
		},
		{
			name:     "package member prefix",
			line:     `<topic href='flash/utils/package.html#getTimerValue()'/>`,
			word:     "getTimer",
			wantPath: "flash.utils.getTimerValue",
			wantOK:   true,
		},
		{
			name:     "package member with relative prefix",
			line:     `<topic href='../flash/utils/package.html#getTimer()'/>`,
			word:     "getTimer",
			wantPath: "flash.utils.getTimer",
			wantOK:   true,
		},
		{
			name:   "package member without call parens",
			line:   `<topic href='flash/utils/package.html#getTimer'/>`,
			word:   "getTimer",
			wantOK: false,
		},
		{
			name:   "member anchor on class page",
			line:   `<topic href='flash/display/Sprite.html#graphics'/>`,
			word:   "graphics",
			wantOK: false,
		},
		{
			name:     "second href matches",
			line:     `<a href='flash/events/Other.html'/><a href='flash/events/Event.html'/>`,
			word:     "Event",
			wantPath: "flash.events.Event",
			wantOK:   true,
		},
		{
			name:   "no href",
			line:   `<toc label="ActionScript 3.0">`,
			word:   "Sprite",
			wantOK: false,
		},
		{
			name:   "unterminated href",
			line:   `<topic href='flash/display/Sprite.html`,
			word:   "Sprite",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := MatchDocLine(tt.line, tt.word)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPath, path)
			}
		})
	}
}

func TestDocNames(t *testing.T) {
	line := `<a href='flash/display/Sprite.html'/><a href='flash/utils/package.html#getTimer()'/>` +
		`<a href='flash/display/package.html'/><a href='flash/display/Sprite.html#graphics'/>`

	assert.Equal(t, []string{"Sprite", "getTimer"}, DocNames(line))
	assert.Empty(t, DocNames(`<toc label="root">`))
	assert.Equal(t, []string{"getTimer"}, DocNames(`<a href='../flash/utils/package.html#getTimer()'/>`))
}
