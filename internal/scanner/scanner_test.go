package scanner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danlite/as3pkg/internal/classpath"
	as3errors "github.com/danlite/as3pkg/internal/errors"
	"github.com/danlite/as3pkg/testhelpers"
)

func paths(candidates []classpath.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Path)
	}
	return out
}

func TestProjectScanner(t *testing.T) {
	fx := testhelpers.NewFixture(t).
		AddClasses("src/flash/display/Sprite.as", "src/flash/display/SpriteHelper.mxml", "src/com/MySprite.as").
		AddFile("src/notes/Sprite.txt", "")

	cfg := testhelpers.NewTestConfigBuilder(fx.Root).Build()
	s := NewProjectScanner(cfg.Project.Root, cfg.Source.Extensions, NewWalker(cfg))

	candidates, err := s.Scan(context.Background(), "Sprite")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"src/flash/display/Sprite.as", "src/flash/display/SpriteHelper.mxml"}, paths(candidates))
	for _, c := range candidates {
		assert.Equal(t, classpath.SourceProject, c.Source)
	}
	assert.Equal(t, classpath.SourceProject, s.Source())
}

func TestProjectScanner_NoProject(t *testing.T) {
	cfg := testhelpers.NewTestConfigBuilder("").Build()
	s := NewProjectScanner("", cfg.Source.Extensions, NewWalker(cfg))

	candidates, err := s.Scan(context.Background(), "Sprite")
	assert.NoError(t, err)
	assert.Empty(t, candidates)

	names, err := s.Names(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestProjectScanner_MissingRoot(t *testing.T) {
	cfg := testhelpers.NewTestConfigBuilder("").Build()
	s := NewProjectScanner("/nonexistent/as3pkg/project", cfg.Source.Extensions, NewWalker(cfg))

	candidates, err := s.Scan(context.Background(), "Sprite")
	assert.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestProjectScanner_Names(t *testing.T) {
	fx := testhelpers.NewFixture(t).
		AddClasses("src/com/Main.as", "src/com/View.mxml").
		AddFile("src/readme.txt", "")

	cfg := testhelpers.NewTestConfigBuilder(fx.Root).Build()
	names, err := NewProjectScanner(fx.Root, cfg.Source.Extensions, NewWalker(cfg)).Names(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Main", "View"}, names)
}

func TestLibraryScanner(t *testing.T) {
	fx := testhelpers.NewFixture(t).
		AddClasses("corelib/src/com/adobe/serialization/json/JSON.as", "flex/src/mx/utils/JSONUtil.as")

	cfg := testhelpers.NewTestConfigBuilder("").Build()
	s := NewLibraryScanner([]string{fx.Path("corelib"), fx.Path("missing"), fx.Path("flex")}, cfg.Source.Extensions, NewWalker(cfg))

	candidates, err := s.Scan(context.Background(), "JSON")
	require.NoError(t, err, "missing library roots are skipped")

	// Library prefixes are stripped and roots are scanned in order
	assert.Equal(t, []string{"src/com/adobe/serialization/json/JSON.as", "src/mx/utils/JSONUtil.as"}, paths(candidates))
	assert.Equal(t, classpath.SourceLibrary, candidates[0].Source)
}

func TestLibraryScanner_NoRoots(t *testing.T) {
	cfg := testhelpers.NewTestConfigBuilder("").Build()
	candidates, err := NewLibraryScanner(nil, cfg.Source.Extensions, NewWalker(cfg)).Scan(context.Background(), "JSON")
	assert.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestLibraryScanner_RootIsFileKeepsOtherResults(t *testing.T) {
	fx := testhelpers.NewFixture(t).AddClasses("lib/src/JSON.as", "file.as")

	cfg := testhelpers.NewTestConfigBuilder("").Build()
	s := NewLibraryScanner([]string{fx.Path("file.as"), fx.Path("lib")}, cfg.Source.Extensions, NewWalker(cfg))

	candidates, err := s.Scan(context.Background(), "JSON")
	assert.Error(t, err)
	assert.Equal(t, []string{"src/JSON.as"}, paths(candidates))
}

func TestDocScanner(t *testing.T) {
	fx := testhelpers.NewFixture(t)
	toc := fx.WriteTOC("data/doc_dictionary.xml",
		"flash/events/Event.html",
		"flash/events/EventDispatcher.html",
		"mx/events/Event.html",
		"flash/utils/package.html#getTimer()",
	)

	s := NewDocScanner(toc)
	candidates, err := s.Scan(context.Background(), "Event")
	require.NoError(t, err)
	assert.Equal(t, []string{"flash.events.Event", "flash.events.EventDispatcher", "mx.events.Event"}, paths(candidates))
	assert.Equal(t, classpath.SourceDocumentation, s.Source())

	candidates, err = s.Scan(context.Background(), "getTimer")
	require.NoError(t, err)
	assert.Equal(t, []string{"flash.utils.getTimer"}, paths(candidates))

	names, err := s.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Event", "EventDispatcher", "Event", "getTimer"}, names)
}

func TestDocScanner_Missing(t *testing.T) {
	s := NewDocScanner("/nonexistent/as3pkg/doc_dictionary.xml")
	candidates, err := s.Scan(context.Background(), "Event")

	assert.Empty(t, candidates)
	require.Error(t, err)
	assert.True(t, as3errors.IsResourceMissing(err))
}

func TestFromConfig_Order(t *testing.T) {
	cfg := testhelpers.NewTestConfigBuilder("").Build()
	scanners := FromConfig(cfg)

	require.Len(t, scanners, 3)
	assert.Equal(t, classpath.SourceProject, scanners[0].Source())
	assert.Equal(t, classpath.SourceDocumentation, scanners[1].Source())
	assert.Equal(t, classpath.SourceLibrary, scanners[2].Source())
}
