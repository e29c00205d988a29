package browse

import (
	"github.com/kimandshin/hymn/internal/models"
)

// Zoom bounds and step, in tenths. Integer tenths keep repeated
// stepping exact instead of drifting through float accumulation.
const (
	zoomMin     = 5  // 0.5x
	zoomMax     = 30 // 3.0x
	zoomDefault = 10 // 1.0x
)

// Session owns all browsing state: the collection snapshot, the filter
// inputs, the derived filtered view, the active selection, and the viewer
// zoom level. Nothing outside this struct mutates that state.
//
// An empty selected id means no selection (the filtered view is empty).
type Session struct {
	hymns         []models.Hymn
	filtered      []models.Hymn
	query         string
	favoritesOnly bool
	favs          Favorer

	selectedID string
	zoomTenths int
	generation uint64
}

// NewSession creates an empty session using favs for favorites-only filtering.
func NewSession(favs Favorer) *Session {
	return &Session{
		favs:       favs,
		zoomTenths: zoomDefault,
	}
}

// SetHymns installs a freshly loaded collection snapshot, recomputes the
// filtered view and selects its first hymn, or clears the selection when
// the view is empty.
func (s *Session) SetHymns(hymns []models.Hymn) {
	s.hymns = hymns
	s.refilter()
}

// SetQuery updates the search query and recomputes the filtered view.
func (s *Session) SetQuery(query string) {
	s.query = query
	s.refilter()
}

// Query returns the current search query.
func (s *Session) Query() string { return s.query }

// ToggleFavoritesOnly flips the favorites-only mode and recomputes the
// filtered view. Returns the new mode.
func (s *Session) ToggleFavoritesOnly() bool {
	s.favoritesOnly = !s.favoritesOnly
	s.refilter()
	return s.favoritesOnly
}

// FavoritesOnly reports whether the favorites-only mode is active.
func (s *Session) FavoritesOnly() bool { return s.favoritesOnly }

// Refilter recomputes the filtered view against current inputs. Called
// after external state feeding the filter changes (a favorite toggled
// while favorites-only mode is on).
func (s *Session) Refilter() {
	s.refilter()
}

// refilter fully recomputes the filtered view, then reconciles the
// selection: an id still visible stays selected (no visual reset), a
// vanished one snaps to the first visible hymn, an empty view clears it.
func (s *Session) refilter() {
	s.filtered = Filter(s.hymns, s.query, s.favoritesOnly, s.favs)

	if len(s.filtered) == 0 {
		if s.selectedID != "" || s.generation == 0 {
			s.changeSelection("")
		}
		return
	}

	if s.indexOf(s.selectedID) == -1 {
		s.changeSelection(s.filtered[0].ID.String())
	}
}

// Select makes the given hymn the active selection unconditionally.
func (s *Session) Select(h models.Hymn) {
	s.changeSelection(h.ID.String())
}

// SelectIndex selects the hymn at the given position in the filtered view.
func (s *Session) SelectIndex(i int) {
	if i < 0 || i >= len(s.filtered) {
		return
	}
	s.changeSelection(s.filtered[i].ID.String())
}

// Advance moves the selection delta steps through the filtered view,
// treating it as circular. A no-op when the view is empty. A selection
// that is no longer in the view (filter change race) lands on index 0.
func (s *Session) Advance(delta int) {
	if len(s.filtered) == 0 {
		return
	}

	idx := s.indexOf(s.selectedID)
	if idx == -1 {
		idx = 0
	} else {
		n := len(s.filtered)
		idx = ((idx+delta)%n + n) % n
	}

	s.changeSelection(s.filtered[idx].ID.String())
}

// changeSelection is the single transition point into Selected/NoSelection:
// it resets zoom and bumps the generation so in-flight comment loads for
// the previous selection identify themselves as stale.
func (s *Session) changeSelection(id string) {
	s.selectedID = id
	s.zoomTenths = zoomDefault
	s.generation++
}

// Current returns the selected hymn, or false when there is no selection.
func (s *Session) Current() (models.Hymn, bool) {
	idx := s.indexOf(s.selectedID)
	if idx == -1 {
		return models.Hymn{}, false
	}
	return s.filtered[idx], true
}

// SelectedID returns the active hymn id, or "" for no selection.
func (s *Session) SelectedID() string { return s.selectedID }

// SelectedIndex returns the selection's position in the filtered view, or -1.
func (s *Session) SelectedIndex() int { return s.indexOf(s.selectedID) }

// Filtered returns the current filtered view in collection order.
func (s *Session) Filtered() []models.Hymn { return s.filtered }

// Hymns returns the full collection snapshot.
func (s *Session) Hymns() []models.Hymn { return s.hymns }

// Generation returns the selection generation. It increases on every
// selection change; asynchronous results tagged with an older value must
// be discarded.
func (s *Session) Generation() uint64 { return s.generation }

// ZoomIn raises the zoom one step, clamped at 3.0x.
func (s *Session) ZoomIn() {
	if s.zoomTenths < zoomMax {
		s.zoomTenths++
	}
}

// ZoomOut lowers the zoom one step, clamped at 0.5x.
func (s *Session) ZoomOut() {
	if s.zoomTenths > zoomMin {
		s.zoomTenths--
	}
}

// Zoom returns the current zoom factor.
func (s *Session) Zoom() float64 {
	return float64(s.zoomTenths) / 10
}

func (s *Session) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, h := range s.filtered {
		if h.ID.String() == id {
			return i
		}
	}
	return -1
}
