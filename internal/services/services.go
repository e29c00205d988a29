// package services defines interface Service for interacting with the hymn archive HTTP API
package services

import (
	"context"

	"github.com/kimandshin/hymn/internal/models"
)

// Service defines the interface for the remote hymn archive: one endpoint
// answering action-dispatched reads and a single comment write.
type Service interface {
	// ListHymns retrieves the full hymn collection.
	// An absent or empty result list means zero hymns, not an error.
	ListHymns(ctx context.Context) ([]models.Hymn, error)

	// ListComments retrieves the comments attached to one hymn,
	// in server order. Empty/absent means no comments, not an error.
	ListComments(ctx context.Context, hymnID string) ([]models.Comment, error)

	// AddComment submits a comment for a hymn. A server-rejected submission
	// is returned as a [*ServerError] carrying the server's message verbatim,
	// distinct from transport or decode failures.
	AddComment(ctx context.Context, hymnID, name, text string) error

	// Name returns the name of the service (e.g., "Hymn Archive")
	Name() string
}

// ServerError is a logical error reported by the archive in an otherwise
// successful response payload. Callers branch on it with [errors.As].
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return e.Message }
