package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kimandshin/hymn/internal/services"
	"github.com/kimandshin/hymn/internal/shared"
	"github.com/urfave/cli/v3"
)

// CommentsList prints the comment thread of one hymn in server order.
func (r *Runner) CommentsList(ctx context.Context, cmd *cli.Command) error {
	if r.archive == nil {
		return fmt.Errorf("%w: archive service not initialized", shared.ErrServiceUnavailable)
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: hymn id", shared.ErrMissingArgument)
	}

	comments, err := r.archive.ListComments(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch comments: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(comments, cmd.Bool("pretty"))
	}

	if len(comments) == 0 {
		return r.writePlainln("No comments yet.")
	}

	for _, c := range comments {
		r.writePlainln("%s", c.Header())
		r.writePlainln("  %s", c.Body)
	}

	return nil
}

// CommentsAdd submits a comment for a hymn.
//
// A server-rejected submission prints the server's message verbatim and
// exits non-zero; it is never reported as success.
func (r *Runner) CommentsAdd(ctx context.Context, cmd *cli.Command) error {
	if r.archive == nil {
		return fmt.Errorf("%w: archive service not initialized", shared.ErrServiceUnavailable)
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: hymn id", shared.ErrMissingArgument)
	}

	text := strings.TrimSpace(cmd.String("text"))
	if text == "" {
		return fmt.Errorf("%w: comment text must not be empty", shared.ErrInvalidInput)
	}

	name := strings.TrimSpace(cmd.String("name"))
	if name == "" {
		name = "Anonymous"
	}

	if err := r.archive.AddComment(ctx, id, name, text); err != nil {
		var srvErr *services.ServerError
		if errors.As(err, &srvErr) {
			return fmt.Errorf("error from server: %s", srvErr.Message)
		}
		return fmt.Errorf("failed to add comment: %w", err)
	}

	r.logger.Infof("comment added to hymn %s", id)
	return r.writePlainln("✓ Comment added.")
}

// commentsCommand handles the per-hymn comment thread
func commentsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "comments",
		Usage: "Read and write hymn comments",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List comments for a hymn",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
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
				Action: r.CommentsList,
			},
			{
				Name:  "add",
				Usage: "Add a comment to a hymn",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "Author name (defaults to Anonymous)",
					},
					&cli.StringFlag{
						Name:     "text",
						Aliases:  []string{"t"},
						Usage:    "Comment body",
						Required: true,
					},
				},
				Action: r.CommentsAdd,
			},
		},
	}
}
