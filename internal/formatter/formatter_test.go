package formatter

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kimandshin/hymn/internal/models"
)

func exportHymns() []models.Hymn {
	return []models.Hymn{
		{ID: "h1", TitleKo: "주 하나님", Number: "79", Key: "Bb", Tags: "praise", ImagePath: "/sheets/h1.png"},
		{ID: "h2", TitleEn: "Amazing Grace", Number: "305"},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(exportHymns())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "ID" || records[0][1] != "Title" {
		t.Errorf("unexpected header %v", records[0])
	}
	if records[1][1] != "주 하나님" {
		t.Errorf("expected display title in row, got %q", records[1][1])
	}
	if records[2][2] != "305" {
		t.Errorf("expected number in row, got %q", records[2][2])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown("Hymn Collection", exportHymns())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := string(data)
	if !strings.HasPrefix(out, "# Hymn Collection\n") {
		t.Errorf("expected title heading, got %q", out)
	}
	if !strings.Contains(out, "**Hymns**: 2") {
		t.Error("expected hymn count")
	}
	if !strings.Contains(out, "1. 주 하나님 — #79 · Key: Bb · [praise]") {
		t.Errorf("expected numbered entry with meta, got %q", out)
	}
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(exportHymns())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "1. 주 하나님") {
		t.Errorf("expected first entry, got %q", out)
	}
	if !strings.Contains(out, "2. Amazing Grace") {
		t.Errorf("expected second entry, got %q", out)
	}
}

func TestDownloadImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("image bytes"))
		}))
		defer server.Close()

		data, err := DownloadImage(server.Client(), server.URL+"/sheet.png")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(data) != "image bytes" {
			t.Errorf("unexpected data %q", data)
		}
	})

	t.Run("Empty URL", func(t *testing.T) {
		if _, err := DownloadImage(nil, ""); err == nil {
			t.Error("expected error for empty URL")
		}
	})

	t.Run("Error Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		if _, err := DownloadImage(server.Client(), server.URL+"/gone.png"); err == nil {
			t.Error("expected error for 404 response")
		}
	})
}
