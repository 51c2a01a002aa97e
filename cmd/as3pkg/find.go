package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/danlite/as3pkg/internal/classpath"
	"github.com/danlite/as3pkg/internal/menu"
	"github.com/danlite/as3pkg/internal/resolve"
)

type findOutput struct {
	Word        string   `json:"word" yaml:"word"`
	Status      string   `json:"status" yaml:"status"`
	Path        string   `json:"path,omitempty" yaml:"path,omitempty"`
	Package     string   `json:"package,omitempty" yaml:"package,omitempty"`
	Class       string   `json:"class,omitempty" yaml:"class,omitempty"`
	Import      string   `json:"import,omitempty" yaml:"import,omitempty"`
	Candidates  []string `json:"candidates,omitempty" yaml:"candidates,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	Message     string   `json:"message,omitempty" yaml:"message,omitempty"`
}

func findCommand(c *cli.Context, s *streams) error {
	format, err := outputFormat(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	word := strings.Join(c.Args().Slice(), " ")
	r := resolve.New(cfg,
		resolve.WithPresenter(presenterFor(c, s)),
		resolve.WithNotifier(menu.Tooltip{W: s.errOut}),
	)

	outcome, err := r.FindPackage(c.Context, word)
	if err != nil {
		return err
	}

	result := findOutput{
		Word:        strings.TrimSpace(word),
		Status:      outcome.Status.String(),
		Path:        outcome.Path,
		Candidates:  outcome.Candidates,
		Suggestions: outcome.Suggestions,
		Message:     outcome.Message,
	}
	if outcome.Status == resolve.Found {
		result.Package = classpath.PackageName(outcome.Path)
		result.Class = classpath.ClassName(outcome.Path)
		result.Import = importStatement(outcome.Path)
	}

	if format != formatText {
		if err := writeStructured(s.out, format, result); err != nil {
			return err
		}
	} else if outcome.Status == resolve.Found {
		if c.Bool("import") {
			fmt.Fprintln(s.out, result.Import)
		} else {
			fmt.Fprintln(s.out, outcome.Path)
		}
	}

	return exitFor(outcome.Status)
}

// presenterFor picks how ambiguous results are disambiguated: an explicit
// choice, the interactive menu, or a printed list when there is no terminal.
func presenterFor(c *cli.Context, s *streams) resolve.Presenter {
	switch {
	case c.IsSet("pick"):
		return menu.Nth{N: c.Int("pick")}
	case c.Bool("first"):
		return menu.Nth{N: 1}
	case s.interactive != nil && s.interactive():
		return menu.NewTerminal(s.in, s.errOut)
	default:
		return menu.List{W: s.errOut}
	}
}

func importStatement(path string) string {
	return "import " + path + ";"
}

func exitFor(status resolve.Status) error {
	switch status {
	case resolve.Found:
		return nil
	case resolve.NoInput, resolve.NotFound:
		return cli.Exit("", exitNotFound)
	default:
		return cli.Exit("", exitCancelled)
	}
}
