package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/danlite/as3pkg/internal/debug"
)

// LoadKDL overlays the .as3pkg.kdl file in dir onto cfg.
// Returns false when the directory has no KDL config.
func LoadKDL(dir string, cfg *Config) (bool, error) {
	kdlPath := filepath.Join(dir, KDLFileName)

	if _, err := os.Stat(kdlPath); os.IsNotExist(err) {
		return false, nil
	}

	content, err := os.ReadFile(kdlPath)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", KDLFileName, err)
	}

	if err := parseKDL(string(content), cfg); err != nil {
		return false, fmt.Errorf("%s: %w", kdlPath, err)
	}

	resolveRelativePaths(cfg, dir)
	debug.LogConfig("loaded %s", kdlPath)
	return true, nil
}

// parseKDL applies the nodes of a KDL document to cfg. Unknown nodes are ignored.
//
//	project { root "."; name "app" }
//	source { roots "src" "lib"; extensions "as" "mxml" }
//	libraries "/opt/flex/frameworks/projects/framework/src"
//	docs { toc "/opt/as3pkg/data/doc_dictionary.xml" }
//	index { respect_gitignore true; follow_symlinks false }
//	suggest { enabled true; threshold 0.8; max 5 }
//	exclude "**/generated/**"
func parseKDL(content string, cfg *Config) error {
	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "project":
			for _, cn := range n.Children {
				assignSimpleString(cn, "root", func(v string) { cfg.Project.Root = v })
				assignSimpleString(cn, "name", func(v string) { cfg.Project.Name = v })
			}
		case "source":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "roots":
					if roots := collectStringArgs(cn); len(roots) > 0 {
						cfg.Source.Roots = roots
					}
				case "extensions":
					if exts := collectStringArgs(cn); len(exts) > 0 {
						cfg.Source.Extensions = exts
					}
				}
			}
		case "libraries":
			cfg.Libraries = collectStringArgs(n)
		case "docs":
			for _, cn := range n.Children {
				assignSimpleString(cn, "toc", func(v string) { cfg.Docs.TOC = v })
			}
		case "index":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "respect_gitignore":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Index.RespectGitignore = b
					}
				case "follow_symlinks":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Index.FollowSymlinks = b
					}
				}
			}
		case "suggest":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "enabled":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Suggest.Enabled = b
					}
				case "threshold":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Suggest.Threshold = v
					}
				case "max":
					if v, ok := firstIntArg(cn); ok {
						cfg.Suggest.Max = v
					}
				}
			}
		case "exclude":
			// Exclusions accumulate across the home and project files
			cfg.Exclude = DeduplicatePatterns(append(cfg.Exclude, collectStringArgs(n)...))
		}
	}

	return nil
}

// resolveRelativePaths anchors relative paths from a config file at the
// directory that contains it.
func resolveRelativePaths(cfg *Config, dir string) {
	anchor := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Clean(filepath.Join(dir, p))
	}

	cfg.Project.Root = anchor(cfg.Project.Root)
	cfg.Docs.TOC = anchor(cfg.Docs.TOC)
	for i, lib := range cfg.Libraries {
		cfg.Libraries[i] = anchor(lib)
	}
}

// Helper functions leveraging the kdl-go document model
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		debug.LogConfig("invalid float value for '%s', expected number but got %T", nodeName(n), n.Arguments[0].Value)
		return 0, false
	}
}

// collectStringArgs reads inline arguments (`roots "src" "lib"`) or, when
// there are none, block children (`roots { "src"; "lib" }`).
func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}

	if len(out) == 0 && len(n.Children) > 0 {
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				// In block form the node name itself is the value
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}

	return out
}

func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}
