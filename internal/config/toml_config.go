package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/danlite/as3pkg/internal/debug"
)

// LoadTOML overlays the .as3pkg.toml file in dir onto cfg. Keys absent from
// the file keep their current values; exclusions accumulate like in KDL.
//
//	libraries = ["/opt/flex/frameworks/projects/framework/src"]
//	exclude = ["**/generated/**"]
//
//	[source]
//	roots = ["src", "lib"]
func LoadTOML(dir string, cfg *Config) (bool, error) {
	tomlPath := filepath.Join(dir, TOMLFileName)

	data, err := os.ReadFile(tomlPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", TOMLFileName, err)
	}

	baseExclude := cfg.Exclude
	cfg.Exclude = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		cfg.Exclude = baseExclude
		return false, fmt.Errorf("failed to parse %s: %w", tomlPath, err)
	}
	cfg.Exclude = DeduplicatePatterns(append(baseExclude, cfg.Exclude...))

	resolveRelativePaths(cfg, dir)
	debug.LogConfig("loaded %s", tomlPath)
	return true, nil
}
