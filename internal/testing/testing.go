// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"

	"github.com/kimandshin/hymn/internal/models"
)

// AddedComment records one AddComment call observed by [MockService].
type AddedComment struct {
	HymnID string
	Name   string
	Text   string
}

// MockService is a configurable test double for services.Service
type MockService struct {
	Hymns    []models.Hymn
	Comments map[string][]models.Comment

	ListErr     error
	CommentsErr error
	AddErr      error

	Added []AddedComment
}

func (m *MockService) ListHymns(ctx context.Context) ([]models.Hymn, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Hymns, nil
}

func (m *MockService) ListComments(ctx context.Context, hymnID string) ([]models.Comment, error) {
	if m.CommentsErr != nil {
		return nil, m.CommentsErr
	}
	return m.Comments[hymnID], nil
}

func (m *MockService) AddComment(ctx context.Context, hymnID, name, text string) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	m.Added = append(m.Added, AddedComment{HymnID: hymnID, Name: name, Text: text})
	return nil
}

func (m *MockService) Name() string { return "mock" }

// MemoryKV is an in-memory favorites.KV implementation.
type MemoryKV struct {
	Values map[string]string
	GetErr error
	SetErr error
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{Values: map[string]string{}}
}

func (m *MemoryKV) Get(key string) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}
	return m.Values[key], nil
}

func (m *MemoryKV) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Values[key] = value
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
