package main

import (
	"context"
	"fmt"

	"github.com/kimandshin/hymn/internal/shared"
	"github.com/urfave/cli/v3"
)

// FavoritesList prints the persisted favorites set.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	store, err := r.favoritesStore()
	if err != nil {
		return err
	}

	favs := store.All()

	if cmd.Bool("json") {
		return r.writeJSON(favs, cmd.Bool("pretty"))
	}

	if len(favs) == 0 {
		return r.writePlainln("No favorites yet.")
	}

	for _, id := range favs {
		r.writePlainln("%s", id)
	}

	return nil
}

// FavoritesToggle flips one hymn id in the persisted set.
func (r *Runner) FavoritesToggle(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: hymn id", shared.ErrMissingArgument)
	}

	store, err := r.favoritesStore()
	if err != nil {
		return err
	}

	store.Toggle(id)

	if store.IsFavorite(id) {
		return r.writePlainln("★ %s added to favorites", id)
	}
	return r.writePlainln("☆ %s removed from favorites", id)
}

// favoritesCommand manages the local favorites set
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"favs"},
		Usage:   "Manage favorited hymns",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List favorited hymn ids",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.FavoritesList,
			},
			{
				Name:  "toggle",
				Usage: "Toggle a hymn in the favorites set",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.FavoritesToggle,
			},
		},
	}
}
