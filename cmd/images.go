package main

import (
	"context"
	"fmt"

	"github.com/kimandshin/hymn/internal/shared"
	"github.com/kimandshin/hymn/internal/tasks"
	"github.com/urfave/cli/v3"
)

// ImagesSync mirrors the collection's sheet images to local disk.
func (r *Runner) ImagesSync(ctx context.Context, cmd *cli.Command) error {
	if r.archive == nil {
		return fmt.Errorf("%w: archive service not initialized", shared.ErrServiceUnavailable)
	}

	hymns, err := r.archive.ListHymns(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch hymns: %w", err)
	}

	outputDir := cmd.String("output")
	if outputDir == "" {
		outputDir = r.config.Images.Dir
	}

	opts := tasks.ImageFetchOpts{
		OutputDir:  outputDir,
		ImageBase:  r.config.API.ImageBase,
		NumWorkers: r.config.Images.NumWorkers,
		RateLimit:  r.config.API.RateLimit,
		Force:      cmd.Bool("force"),
	}

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.writePlainln("%s", update.Message)
		}
	}()

	engine := tasks.NewImageEngine(r.httpClient)
	result, err := engine.FetchAll(ctx, progress, hymns, opts)
	close(progress)
	<-done

	if err != nil {
		return fmt.Errorf("image sync failed: %w", err)
	}

	r.writePlainln("✓ Images synced to %s", result.OutputDirectory)
	r.writePlainln("  Downloaded: %d  Skipped: %d  Failed: %d", result.Downloaded, result.Skipped, result.Failed)

	for _, failure := range result.Failures {
		r.writePlainln("  ✗ %s (%s): %v", failure.Title, failure.HymnID, failure.Error)
	}

	return nil
}

// imagesCommand mirrors sheet images locally
func imagesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "images",
		Usage: "Mirror hymn sheet images to local disk",
		Commands: []*cli.Command{
			{
				Name:  "sync",
				Usage: "Download sheet images for the whole collection",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Destination directory",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Re-download images that already exist locally",
					},
				},
				Action: r.ImagesSync,
			},
		},
	}
}
