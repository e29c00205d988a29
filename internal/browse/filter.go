package browse

import (
	"strings"

	"github.com/kimandshin/hymn/internal/models"
)

// Favorer reports favorite membership for a hymn identifier.
// Implemented by favorites.Store.
type Favorer interface {
	IsFavorite(id string) bool
}

// Filter derives the visible subsequence of hymns from the free-text query
// and the favorites-only mode.
//
// The query is matched case-insensitively as a substring against every
// searchable field that is present; a hymn stays if any field matches.
// The query is deliberately not whitespace-trimmed: a trailing space is
// part of what the user typed. Output order is collection order.
func Filter(hymns []models.Hymn, query string, favoritesOnly bool, favs Favorer) []models.Hymn {
	q := strings.ToLower(query)

	filtered := make([]models.Hymn, 0, len(hymns))
	for _, h := range hymns {
		if favoritesOnly && (favs == nil || !favs.IsFavorite(h.ID.String())) {
			continue
		}
		if q == "" || matches(h, q) {
			filtered = append(filtered, h)
		}
	}

	return filtered
}

func matches(h models.Hymn, q string) bool {
	for _, field := range h.SearchFields() {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
