// package formatter provides functions to export the hymn collection to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kimandshin/hymn/internal/models"
)

// ExportToCSV converts a hymn collection to CSV with columns: ID, Title, Number, Key, Tags, Themes, Keywords, Image
func ExportToCSV(hymns []models.Hymn) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Number", "Key", "Tags", "Themes", "Keywords", "Image"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, h := range hymns {
		record := []string{
			h.ID.String(),
			h.DisplayTitle(),
			h.Number.String(),
			h.Key,
			h.Tags,
			h.Themes,
			h.Keywords,
			h.ImagePath,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a hymn collection to a Markdown listing.
func ExportToMarkdown(title string, hymns []models.Hymn) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Hymns**: %d\n\n", len(hymns)))

	for i, h := range hymns {
		meta := h.ListMeta()
		if meta != "" {
			buf.WriteString(fmt.Sprintf("%d. %s — %s\n", i+1, h.DisplayTitle(), meta))
		} else {
			buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, h.DisplayTitle()))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a hymn collection to plain text.
func ExportToText(hymns []models.Hymn) ([]byte, error) {
	var buf bytes.Buffer

	for i, h := range hymns {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, h.DisplayTitle()))
		if meta := h.ViewerMeta(); meta != "" {
			buf.WriteString(fmt.Sprintf("   %s\n", meta))
		}
	}

	return buf.Bytes(), nil
}

// DownloadImage downloads a sheet image from the given URL and returns the raw bytes
func DownloadImage(client *http.Client, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}
