package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	content := `
libraries = ["/opt/flex/frameworks/projects/framework/src"]
exclude = ["**/generated/**"]

[source]
roots = ["src", "lib"]

[suggest]
max = 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte(content), 0o644))

	cfg := Default()
	found, err := LoadTOML(dir, cfg)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, []string{"src", "lib"}, cfg.Source.Roots)
	assert.Equal(t, DefaultExtensions(), cfg.Source.Extensions, "keys absent from the file keep their values")
	assert.Equal(t, []string{"/opt/flex/frameworks/projects/framework/src"}, cfg.Libraries)
	assert.Equal(t, 2, cfg.Suggest.Max)
	assert.True(t, cfg.Suggest.Enabled)
	assert.Contains(t, cfg.Exclude, "**/generated/**")
	assert.Contains(t, cfg.Exclude, "**/bin-debug/**")
}

func TestLoadTOML_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte("[source\nroots = 1"), 0o644))

	cfg := Default()
	before := len(cfg.Exclude)
	found, err := LoadTOML(dir, cfg)
	assert.Error(t, err)
	assert.False(t, found)
	assert.Len(t, cfg.Exclude, before)
}

func TestLoadTOML_Missing(t *testing.T) {
	found, err := LoadTOML(t.TempDir(), Default())
	require.NoError(t, err)
	assert.False(t, found)
}
