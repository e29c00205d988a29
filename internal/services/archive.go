// Hymn archive [Service] implementation
//
// Communicates with a single script-host endpoint that dispatches on an
// "action" query parameter. The host enforces a shared quota, so every
// request passes through a client-side rate limiter.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kimandshin/hymn/internal/models"
	"golang.org/x/time/rate"
)

const defaultRateLimit float64 = 5.0

// ArchiveService implements the Service interface for the hymn archive endpoint.
type ArchiveService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewArchiveService creates a new archive service instance.
//
// The client defaults to one with a 30s timeout; ratePerSec defaults to 5.
func NewArchiveService(baseURL string, client *http.Client, ratePerSec float64) *ArchiveService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if ratePerSec <= 0 {
		ratePerSec = defaultRateLimit
	}

	return &ArchiveService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(ratePerSec), 1),
	}
}

// Name returns the service name.
func (a *ArchiveService) Name() string {
	return "Hymn Archive"
}

// doRequest issues a GET with the given query parameters and decodes the
// JSON response into result. All parameter values are percent-encoded.
func (a *ArchiveService) doRequest(ctx context.Context, params url.Values, result any) error {
	if err := a.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}

	apiURL := a.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("archive API error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ListHymns retrieves the full hymn collection.
//
// Calls GET {base}?action=list.
func (a *ArchiveService) ListHymns(ctx context.Context) ([]models.Hymn, error) {
	params := url.Values{}
	params.Set("action", "list")

	var payload struct {
		Hymns []models.Hymn `json:"hymns"`
	}

	if err := a.doRequest(ctx, params, &payload); err != nil {
		return nil, err
	}

	// Absent key decodes to nil; callers get an empty collection.
	return payload.Hymns, nil
}

// ListComments retrieves comments for a hymn in server order.
//
// Calls GET {base}?action=comments&id={id}.
func (a *ArchiveService) ListComments(ctx context.Context, hymnID string) ([]models.Comment, error) {
	params := url.Values{}
	params.Set("action", "comments")
	params.Set("id", hymnID)

	var payload struct {
		Comments []models.Comment `json:"comments"`
	}

	if err := a.doRequest(ctx, params, &payload); err != nil {
		return nil, err
	}

	return payload.Comments, nil
}

// AddComment submits a comment for a hymn.
//
// Calls GET {base}?action=addComment&id={id}&name={name}&comment={text}.
// A response carrying an "error" field is returned as a [*ServerError];
// it is never treated as a successful submission.
func (a *ArchiveService) AddComment(ctx context.Context, hymnID, name, text string) error {
	params := url.Values{}
	params.Set("action", "addComment")
	params.Set("id", hymnID)
	params.Set("name", name)
	params.Set("comment", text)

	var payload struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}

	if err := a.doRequest(ctx, params, &payload); err != nil {
		return err
	}

	if payload.Error != "" {
		return &ServerError{Message: payload.Error}
	}

	return nil
}
