package main

import (
	"context"
	"fmt"

	"github.com/kimandshin/hymn/internal/shared"
	"github.com/urfave/cli/v3"
)

// APIGet performs a raw GET against the archive endpoint for debugging.
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	if r.api == nil {
		return fmt.Errorf("%w: API service not initialized", shared.ErrServiceUnavailable)
	}

	query := cmd.StringArg("query")

	resp, err := r.api.Get(ctx, query)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}

	r.writePlainln("Status: %d", resp.StatusCode)

	if resp.IsJSON && cmd.Bool("pretty") {
		return r.writeJSON(resp.JSONData, true)
	}

	return r.writePlainln("%s", resp.Body)
}

// apiCommand handles direct archive endpoint calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct calls to the archive endpoint",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET with a raw query string (e.g. \"action=list\")",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON responses",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
		},
	}
}
