package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/docsite/internal/export"
	cli "github.com/urfave/cli/v3"
)

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export a page as a Word document",
		ArgsUsage: "<category/name>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file, - for stdout (default <name>.docx)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			category, name, ok := strings.Cut(cmd.Args().First(), "/")
			if !ok || category == "" || name == "" {
				return fmt.Errorf("page argument must be category/name")
			}

			resolver, err := loadResolver(cmd)
			if err != nil {
				return err
			}
			tree, err := resolver.Tree(category, name)
			if err != nil {
				return err
			}

			output := cmd.String("output")
			if output == "" {
				output = name + ".docx"
			}
			if output == "-" {
				return export.WriteDocx(cmd.Root().Writer, tree)
			}
			return writeFile(output, func(w io.Writer) error {
				return export.WriteDocx(w, tree)
			})
		},
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
