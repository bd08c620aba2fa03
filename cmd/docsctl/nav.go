package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgallion1/docsite/internal/navigation"
	"github.com/disiqueira/gotree/v3"
	cli "github.com/urfave/cli/v3"
)

func navCmd() *cli.Command {
	return &cli.Command{
		Name:  "nav",
		Usage: "Print the navigation table",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Print JSON instead of a tree"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			resolver, err := loadResolver(cmd)
			if err != nil {
				return err
			}
			out := cmd.Root().Writer
			if cmd.Bool("json") {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"categories": resolver.Table()})
			}
			_, err = fmt.Fprint(out, navTree(resolver.Table()))
			return err
		},
	}
}

// navTree renders the table as an indented tree, one branch per category.
func navTree(table navigation.Table) string {
	root := gotree.New(fmt.Sprintf("docs (%d pages)", table.Len()))
	for _, c := range table {
		branch := root.Add(c.Name)
		for _, item := range c.Items {
			branch.Add(fmt.Sprintf("%s [%s]", item.Name, item.Href))
		}
	}
	return root.Print()
}
