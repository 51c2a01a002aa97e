package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/danlite/as3pkg/internal/resolve"
)

type listOutput struct {
	Path    string   `json:"path" yaml:"path"`
	Found   bool     `json:"found" yaml:"found"`
	Classes []string `json:"classes" yaml:"classes"`
}

func listCommand(c *cli.Context, s *streams) error {
	format, err := outputFormat(c)
	if err != nil {
		return err
	}

	path := strings.TrimSpace(c.Args().First())
	if path == "" {
		return cli.Exit("Please give a package path to list.", exitNotFound)
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	classes, found := resolve.NewLister(cfg).ListPackage(path)
	if classes == nil {
		classes = []string{}
	}

	if format != formatText {
		if err := writeStructured(s.out, format, listOutput{Path: path, Found: found, Classes: classes}); err != nil {
			return err
		}
	} else {
		for _, class := range classes {
			fmt.Fprintln(s.out, class)
		}
	}

	if !found {
		return cli.Exit("Package not found: "+path, exitNotFound)
	}
	return nil
}
