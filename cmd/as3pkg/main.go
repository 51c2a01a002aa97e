package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/danlite/as3pkg/internal/config"
	"github.com/danlite/as3pkg/internal/debug"
	"github.com/danlite/as3pkg/internal/version"
)

// Exit codes shared with editor integrations
const (
	exitOK        = 0
	exitFailure   = 1
	exitNotFound  = 2
	exitCancelled = 3
)

// streams are the process's stdio, replaceable in tests
type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// interactive reports whether a menu can be shown on the terminal
	interactive func() bool
}

func osStreams() *streams {
	return &streams{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, osStreams())
	stop()
	os.Exit(code)
}

// run executes the CLI and maps its result to an exit code
func run(ctx context.Context, args []string, s *streams) int {
	err := newApp(s).RunContext(ctx, args)
	if err == nil {
		return exitOK
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(s.errOut, msg)
		}
		return exitErr.ExitCode()
	}

	fmt.Fprintf(s.errOut, "Error: %v\n", err)
	return exitFailure
}

func newApp(s *streams) *cli.App {
	return &cli.App{
		Name:                   "as3pkg",
		Usage:                  "Find the package of an ActionScript 3 class",
		Version:                version.Info(),
		UseShortOptionHandling: true,
		Reader:                 s.in,
		Writer:                 s.out,
		ErrWriter:              s.errOut,
		// Exit codes are handled by run so tests never call os.Exit
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file or directory holding .as3pkg.kdl / .as3pkg.toml",
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Project root directory (overrides config and AS3PKG_PROJECT_DIR)",
			},
			&cli.StringSliceFlag{
				Name:  "src-dirs",
				Usage: "Source root directory names marking the top of package paths (e.g. --src-dirs src,lib)",
			},
			&cli.StringSliceFlag{
				Name:  "lib",
				Usage: "External library source root, repeatable",
			},
			&cli.StringFlag{
				Name:  "toc",
				Usage: "Documentation index (doc_dictionary.xml)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Exclude files matching glob patterns (e.g., --exclude '**/generated/**')",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Write debug information to stderr (to a log file when serving MCP)",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				debug.EnableDebug = "true"
				debug.SetDebugOutput(s.errOut)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "find",
				Aliases:   []string{"f"},
				Usage:     "Print the fully qualified path of a class",
				ArgsUsage: "<ClassName>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "pick",
						Aliases: []string{"p"},
						Usage:   "Choose the Nth candidate (1-based) instead of showing a menu",
					},
					&cli.BoolFlag{
						Name:  "first",
						Usage: "Choose the first candidate instead of showing a menu",
					},
					&cli.BoolFlag{
						Name:    "import",
						Aliases: []string{"i"},
						Usage:   "Print an import statement",
					},
					formatFlag(),
				},
				Action: func(c *cli.Context) error { return findCommand(c, s) },
			},
			{
				Name:      "list",
				Aliases:   []string{"ls"},
				Usage:     "List the classes of a package",
				ArgsUsage: "<package.path>",
				Flags:     []cli.Flag{formatFlag()},
				Action:    func(c *cli.Context) error { return listCommand(c, s) },
			},
			{
				Name:   "config",
				Usage:  "Show the effective configuration",
				Flags:  []cli.Flag{configFormatFlag()},
				Action: func(c *cli.Context) error { return configCommand(c, s) },
			},
			{
				Name:   "mcp",
				Usage:  "Start MCP (Model Context Protocol) server with stdio transport",
				Action: func(c *cli.Context) error { return mcpCommand(c) },
			},
		},
	}
}

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	searchDir := c.String("root")
	if configPath := c.String("config"); configPath != "" {
		dir, err := configDir(configPath)
		if err != nil {
			return nil, err
		}
		searchDir = dir
	}

	cfg, err := config.Load(searchDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", searchDir, err)
	}

	if rootFlag := c.String("root"); rootFlag != "" {
		absRoot, err := filepath.Abs(rootFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path %q: %w", rootFlag, err)
		}
		cfg.Project.Root = absRoot
		cfg.EnrichExclusionsWithBuildArtifacts()
	}
	if roots := c.StringSlice("src-dirs"); len(roots) > 0 {
		cfg.Source.Roots = roots
	}
	if libs := c.StringSlice("lib"); len(libs) > 0 {
		cfg.Libraries = make([]string, 0, len(libs))
		for _, lib := range libs {
			abs, err := filepath.Abs(lib)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve library path %q: %w", lib, err)
			}
			cfg.Libraries = append(cfg.Libraries, abs)
		}
	}
	if toc := c.String("toc"); toc != "" {
		cfg.Docs.TOC = toc
	}
	if excludeFlags := c.StringSlice("exclude"); len(excludeFlags) > 0 {
		cfg.Exclude = config.DeduplicatePatterns(append(cfg.Exclude, excludeFlags...))
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configDir accepts either a config file or the directory containing one
func configDir(p string) (string, error) {
	info, err := os.Stat(p)
	if err != nil {
		return "", fmt.Errorf("config %s: %w", p, err)
	}
	if info.IsDir() {
		return p, nil
	}
	return filepath.Dir(p), nil
}
