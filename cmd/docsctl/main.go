package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dgallion1/docsite/internal/docs"
	"github.com/dgallion1/docsite/internal/render"
	cli "github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "docsctl",
		Usage: "Inspect and export the documentation corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Usage:   "Directory of Markdown pages",
				Value:   "docs",
				Sources: cli.EnvVars("DOCS_ROOT"),
			},
			&cli.StringFlag{
				Name:    "nav",
				Usage:   "Static navigation manifest (YAML); scans --root when empty",
				Sources: cli.EnvVars("NAV_FILE"),
			},
		},
		Commands: []*cli.Command{
			navCmd(),
			exportCmd(),
			searchCmd(),
		},
	}
}

// loadResolver builds the navigation the same way the server does.
func loadResolver(cmd *cli.Command) (*docs.Resolver, error) {
	root := cmd.String("root")
	table, err := docs.LoadTable(root, cmd.String("nav"))
	if err != nil {
		return nil, fmt.Errorf("loading navigation: %w", err)
	}
	return docs.NewResolver(root, table, render.NewMarkdown()), nil
}
