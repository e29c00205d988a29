// Raw API access for debugging the archive endpoint
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIService provides raw HTTP access to the archive endpoint for
// debugging (`hymn api get`), bypassing the typed Service methods.
type APIService struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIService creates a new raw API service instance.
func NewAPIService(baseURL string, client *http.Client) *APIService {
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// Get performs a GET request with the given raw query string and returns the raw response.
func (a *APIService) Get(ctx context.Context, query string) (*APIResponse, error) {
	fullURL := a.baseURL
	if query != "" {
		fullURL += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	var jsonData any
	if err := json.Unmarshal(body, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}
