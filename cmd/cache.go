package main

import (
	"context"
	"fmt"

	"github.com/kimandshin/hymn/internal/repositories"
	"github.com/kimandshin/hymn/internal/shared"
	"github.com/urfave/cli/v3"
)

// CacheSync fetches the remote collection and replaces the local snapshot.
func (r *Runner) CacheSync(ctx context.Context, cmd *cli.Command) error {
	if r.archive == nil {
		return fmt.Errorf("%w: archive service not initialized", shared.ErrServiceUnavailable)
	}

	hymns, err := r.archive.ListHymns(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch hymns: %w", err)
	}

	db, err := r.database()
	if err != nil {
		return err
	}

	if err := repositories.NewHymnCacheRepository(db).Replace(hymns); err != nil {
		return fmt.Errorf("failed to cache hymns: %w", err)
	}

	r.logger.Infof("cached %d hymns", len(hymns))
	return r.writePlainln("✓ Cached %d hymns.", len(hymns))
}

// CacheShow prints the cached snapshot.
func (r *Runner) CacheShow(ctx context.Context, cmd *cli.Command) error {
	db, err := r.database()
	if err != nil {
		return err
	}

	repo := repositories.NewHymnCacheRepository(db)

	hymns, err := repo.List()
	if err != nil {
		return fmt.Errorf("failed to read hymn cache: %w", err)
	}

	if len(hymns) == 0 {
		return r.writePlainln("Hymn cache is empty.")
	}

	if cmd.Bool("json") {
		return r.writeJSON(hymns, cmd.Bool("pretty"))
	}

	fetched, err := repo.FetchedAt()
	if err == nil && !fetched.IsZero() {
		r.writePlainln("Last synced: %s", fetched.Format("Jan 2, 2006 3:04 PM"))
	}

	for _, h := range hymns {
		if meta := h.ListMeta(); meta != "" {
			r.writePlainln("%s — %s", h.DisplayTitle(), meta)
		} else {
			r.writePlainln("%s", h.DisplayTitle())
		}
	}

	return nil
}

// CacheClear empties the local snapshot.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	db, err := r.database()
	if err != nil {
		return err
	}

	if err := repositories.NewHymnCacheRepository(db).Clear(); err != nil {
		return fmt.Errorf("failed to clear hymn cache: %w", err)
	}

	return r.writePlainln("✓ Hymn cache cleared.")
}

// cacheCommand manages the offline hymn snapshot
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Manage the offline hymn snapshot",
		Commands: []*cli.Command{
			{
				Name:   "sync",
				Usage:  "Fetch the collection and store it locally",
				Action: r.CacheSync,
			},
			{
				Name:  "show",
				Usage: "Print the cached collection",
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
				Action: r.CacheShow,
			},
			{
				Name:   "clear",
				Usage:  "Empty the cached collection",
				Action: r.CacheClear,
			},
		},
	}
}
