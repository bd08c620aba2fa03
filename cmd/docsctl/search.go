package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/dgallion1/docsite/internal/search"
	cli "github.com/urfave/cli/v3"
)

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search page titles, descriptions and bodies",
		ArgsUsage: "<query...>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Value: 10, Usage: "Maximum results"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			query := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(query) == "" {
				return fmt.Errorf("query is required")
			}

			resolver, err := loadResolver(cmd)
			if err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: slog.LevelWarn}))
			idx := search.Build(resolver.Table(), resolver, log)

			results := idx.Query(query, int(cmd.Int("limit")))
			out := cmd.Root().Writer
			if len(results) == 0 {
				_, err := fmt.Fprintln(out, "no matches")
				return err
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Entry.Href, r.Score, r.Entry.Name)
			}
			return tw.Flush()
		},
	}
}
