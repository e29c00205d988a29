package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/kimandshin/hymn/internal/models"
)

var _ list.Item = hymnItem{}

// hymnItem wraps [models.Hymn] to implement [list.Item].
//
// FilterValue is unused: the bubbles list has its own filtering disabled
// because the browse package owns the filtered view.
type hymnItem struct {
	hymn models.Hymn
}

func (i hymnItem) FilterValue() string { return i.hymn.DisplayTitle() }
func (i hymnItem) Title() string       { return i.hymn.DisplayTitle() }
func (i hymnItem) Description() string {
	if meta := i.hymn.ListMeta(); meta != "" {
		return meta
	}
	return " "
}
