package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kimandshin/hymn/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup initializes the local environment: writes a starter config file
// when none exists and applies database migrations.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		r.writePlainln("✓ Created %s — edit it to point at your archive deployment.", configPath)

		if loaded, err := shared.LoadConfig(configPath); err == nil {
			r.config = loaded
		}
	} else {
		r.writePlainln("Config file already exists at %s", configPath)
	}

	db, err := r.database()
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	r.writePlainln("✓ Database ready at %s", r.config.Database.Path)
	return nil
}

// setupCommand initializes config and database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize config file and local database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}
