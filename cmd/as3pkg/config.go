package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"

	"github.com/danlite/as3pkg/internal/config"
)

func configCommand(c *cli.Context, s *streams) error {
	format := strings.ToLower(c.String("format"))
	if format != formatTOML {
		if err := checkFormat(format); err != nil {
			return err
		}
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	switch format {
	case formatText:
		displayConfigTable(s.out, cfg)
		return nil
	case formatTOML:
		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = s.out.Write(data)
		return err
	default:
		return writeStructured(s.out, format, cfg)
	}
}

func displayConfigTable(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "as3pkg Configuration\n")
	fmt.Fprintf(w, "====================\n\n")

	project := "(none)"
	if cfg.HasProject() {
		project = cfg.Project.Root
	}
	fmt.Fprintf(w, "Project root:        %s\n", project)
	fmt.Fprintf(w, "Source roots:        %s\n", strings.Join(cfg.Source.Roots, ", "))
	fmt.Fprintf(w, "Extensions:          %s\n", strings.Join(cfg.Source.Extensions, ", "))
	fmt.Fprintf(w, "Documentation index: %s\n", cfg.Docs.TOC)
	fmt.Fprintf(w, "Respect .gitignore:  %t\n", cfg.Index.RespectGitignore)
	fmt.Fprintf(w, "Follow symlinks:     %t\n", cfg.Index.FollowSymlinks)
	fmt.Fprintf(w, "Suggestions:         %t (threshold %.2f, max %d)\n", cfg.Suggest.Enabled, cfg.Suggest.Threshold, cfg.Suggest.Max)
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "Libraries (%d):\n", len(cfg.Libraries))
	for _, lib := range cfg.Libraries {
		fmt.Fprintf(w, "  %s\n", lib)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "Exclude Patterns (%d):\n", len(cfg.Exclude))
	for _, pattern := range cfg.Exclude {
		fmt.Fprintf(w, "  %s\n", pattern)
	}
}
