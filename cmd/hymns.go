package main

import (
	"context"
	"fmt"

	"github.com/kimandshin/hymn/internal/browse"
	"github.com/kimandshin/hymn/internal/formatter"
	"github.com/kimandshin/hymn/internal/shared"
	"github.com/urfave/cli/v3"
)

// List fetches the collection, applies the same filter pipeline the
// browser uses, and prints the result.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	if r.archive == nil {
		return fmt.Errorf("%w: archive service not initialized", shared.ErrServiceUnavailable)
	}

	hymns, err := r.archive.ListHymns(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch hymns: %w", err)
	}

	query := cmd.String("query")
	favoritesOnly := cmd.Bool("favorites")

	var favs browse.Favorer
	if favoritesOnly {
		store, err := r.favoritesStore()
		if err != nil {
			return err
		}
		favs = store
	}

	filtered := browse.Filter(hymns, query, favoritesOnly, favs)
	r.logger.Infof("fetched %d hymns, %d after filtering", len(hymns), len(filtered))

	if cmd.Bool("json") {
		return r.writeJSON(filtered, cmd.Bool("pretty"))
	}

	switch cmd.String("format") {
	case "csv":
		data, err := formatter.ExportToCSV(filtered)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	case "markdown", "md":
		data, err := formatter.ExportToMarkdown("Hymn Archive", filtered)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	default:
		data, err := formatter.ExportToText(filtered)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}
}

// listCommand prints the (optionally filtered) collection
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List hymns in the archive",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Filter hymns by free-text search",
			},
			&cli.BoolFlag{
				Name:  "favorites",
				Usage: "Restrict output to favorited hymns",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text, csv, markdown",
				Value: "text",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
		},
		Action: r.List,
	}
}
