package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tu "github.com/kimandshin/hymn/internal/testing"
)

func TestArchiveService(t *testing.T) {
	t.Run("Name", func(t *testing.T) {
		svc := NewArchiveService("http://example.com", nil, 0)
		if svc.Name() != "Hymn Archive" {
			t.Errorf("unexpected name %q", svc.Name())
		}
	})

	t.Run("ListHymns", func(t *testing.T) {
		t.Run("Decodes Collection", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("action"); got != "list" {
					t.Errorf("expected action=list, got %q", got)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"hymns": [
					{"HymnID": "h1", "Title_ko": "주 하나님", "Number": 79},
					{"HymnID": 2, "Title_en": "Amazing Grace"}
				]}`))
			}))
			defer server.Close()

			svc := NewArchiveService(server.URL, server.Client(), 100)

			hymns, err := svc.ListHymns(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(hymns) != 2 {
				t.Fatalf("expected 2 hymns, got %d", len(hymns))
			}
			if hymns[0].ID.String() != "h1" || hymns[0].Number.String() != "79" {
				t.Errorf("unexpected first hymn: %+v", hymns[0])
			}
			if hymns[1].ID.String() != "2" {
				t.Errorf("numeric id should decode as string, got %q", hymns[1].ID)
			}
		})

		t.Run("Absent Key Yields Empty Collection", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			svc := NewArchiveService(server.URL, server.Client(), 100)

			hymns, err := svc.ListHymns(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(hymns) != 0 {
				t.Errorf("expected empty collection, got %d", len(hymns))
			}
		})

		t.Run("Server Error Status", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			svc := NewArchiveService(server.URL, server.Client(), 100)

			if _, err := svc.ListHymns(context.Background()); err == nil {
				t.Error("expected error for 500 response")
			}
		})

		t.Run("Unreachable Host", func(t *testing.T) {
			svc := NewArchiveService("http://127.0.0.1:1", nil, 100)

			if _, err := svc.ListHymns(context.Background()); err == nil {
				t.Error("expected transport error")
			}
		})
	})

	t.Run("ListComments", func(t *testing.T) {
		t.Run("Passes Hymn ID And Decodes In Order", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if q.Get("action") != "comments" {
					t.Errorf("expected action=comments, got %q", q.Get("action"))
				}
				if q.Get("id") != "h1" {
					t.Errorf("expected id=h1, got %q", q.Get("id"))
				}
				w.Write([]byte(`{"comments": [
					{"name": "Jin", "comment": "first"},
					{"name": "", "comment": "second"}
				]}`))
			}))
			defer server.Close()

			svc := NewArchiveService(server.URL, server.Client(), 100)

			comments, err := svc.ListComments(context.Background(), "h1")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(comments) != 2 {
				t.Fatalf("expected 2 comments, got %d", len(comments))
			}
			if comments[0].Body != "first" || comments[1].Body != "second" {
				t.Error("comments not in server order")
			}
		})

		t.Run("Empty Array", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"comments": []}`))
			}))
			defer server.Close()

			svc := NewArchiveService(server.URL, server.Client(), 100)

			comments, err := svc.ListComments(context.Background(), "h1")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(comments) != 0 {
				t.Errorf("expected no comments, got %d", len(comments))
			}
		})
	})

	t.Run("AddComment", func(t *testing.T) {
		t.Run("Sends All Parameters Encoded", func(t *testing.T) {
			var gotQuery map[string][]string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				w.Write([]byte(`{"ok": true}`))
			}))
			defer server.Close()

			svc := NewArchiveService(server.URL, server.Client(), 100)

			err := svc.AddComment(context.Background(), "h1", "Jin & Co", "은혜로운 찬송 & more")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if got := gotQuery["action"]; len(got) != 1 || got[0] != "addComment" {
				t.Errorf("expected action=addComment, got %v", got)
			}
			if got := gotQuery["name"]; len(got) != 1 || got[0] != "Jin & Co" {
				t.Errorf("name not round-tripped through encoding: %v", got)
			}
			if got := gotQuery["comment"]; len(got) != 1 || got[0] != "은혜로운 찬송 & more" {
				t.Errorf("comment not round-tripped through encoding: %v", got)
			}
		})

		t.Run("Payload Error Becomes ServerError", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Delivered with HTTP 200; the error lives in the payload.
				w.Write([]byte(`{"ok": false, "error": "Comment too long"}`))
			}))
			defer server.Close()

			svc := NewArchiveService(server.URL, server.Client(), 100)

			err := svc.AddComment(context.Background(), "h1", "Jin", "...")
			if err == nil {
				t.Fatal("expected error from payload")
			}

			var srvErr *ServerError
			if !errors.As(err, &srvErr) {
				t.Fatalf("expected *ServerError, got %T", err)
			}
			if srvErr.Message != "Comment too long" {
				t.Errorf("server message must survive verbatim, got %q", srvErr.Message)
			}
		})

		t.Run("Transport Failure Is Not A ServerError", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused")),
			}
			svc := NewArchiveService("http://example.com", client, 100)

			err := svc.AddComment(context.Background(), "h1", "Jin", "hello")
			if err == nil {
				t.Fatal("expected transport error")
			}

			var srvErr *ServerError
			if errors.As(err, &srvErr) {
				t.Error("transport failures must not masquerade as server errors")
			}
		})
	})

	t.Run("Context Cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		svc := NewArchiveService(server.URL, server.Client(), 100)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := svc.ListHymns(ctx); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}

func TestServerError(t *testing.T) {
	err := &ServerError{Message: "quota exceeded"}
	if err.Error() != "quota exceeded" {
		t.Errorf("unexpected error string %q", err.Error())
	}
}
