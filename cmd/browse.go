package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kimandshin/hymn/internal/models"
	"github.com/kimandshin/hymn/internal/repositories"
	"github.com/kimandshin/hymn/internal/shared"
	"github.com/kimandshin/hymn/internal/ui"
	"github.com/urfave/cli/v3"
)

// Browse launches the interactive terminal browser.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	if r.archive == nil {
		return fmt.Errorf("%w: archive service not initialized", shared.ErrServiceUnavailable)
	}

	favs, err := r.favoritesStore()
	if err != nil {
		return err
	}

	// Offline mode browses the cached snapshot instead of fetching.
	var preloaded []models.Hymn
	if cmd.Bool("offline") {
		db, err := r.database()
		if err != nil {
			return err
		}
		cached, err := repositories.NewHymnCacheRepository(db).List()
		if err != nil {
			return fmt.Errorf("failed to read hymn cache: %w", err)
		}
		if len(cached) == 0 {
			return fmt.Errorf("hymn cache is empty; run 'hymn cache sync' first")
		}
		preloaded = cached
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/hymn-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.archive, favs, ui.Opts{
		ImageBase: r.config.API.ImageBase,
		Preloaded: preloaded,
		Logger:    fileLogger,
	})

	// Mouse mode feeds the swipe recognizer press/release coordinates.
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}

	return nil
}

// browseCommand launches the TUI
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Aliases: []string{"tui"},
		Usage:   "Browse the hymn archive interactively",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "offline",
				Usage: "Browse the locally cached collection without fetching",
			},
		},
		Action: r.Browse,
	}
}
