package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the two-pane browser layout.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	left := m.renderListPane()
	right := m.renderViewerPane()

	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	helpView := m.help.ShortHelpView(m.keys.ShortHelp())

	return fmt.Sprintf("%s\n%s", panes, helpView)
}

func (m *Model) renderListPane() string {
	var b strings.Builder

	b.WriteString(m.search.View())
	b.WriteString("\n")

	if m.session.FavoritesOnly() {
		b.WriteString(styles.ok.Render("Favorites only: On"))
	} else {
		b.WriteString(styles.help.Render("Favorites only: Off"))
	}
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString(styles.err.Render("Error loading hymns."))
	} else {
		b.WriteString(m.hymnList.View())
	}

	width := m.width * 2 / 5
	if width < 24 {
		width = 24
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (m *Model) renderViewerPane() string {
	cur, ok := m.session.Current()
	if !ok {
		if m.loadErr != nil {
			return ""
		}
		return styles.warn.Render("No hymns match your search.")
	}

	var b strings.Builder

	b.WriteString(styles.title.Render(cur.DisplayTitle()))
	b.WriteString("\n")

	if meta := cur.ViewerMeta(); meta != "" {
		b.WriteString(styles.meta.Render(meta))
		b.WriteString("\n")
	}

	if m.favs.IsFavorite(cur.ID.String()) {
		b.WriteString(styles.ok.Render("★ In favorites"))
	} else {
		b.WriteString(styles.help.Render("☆ Add to favorites"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderImage())
	b.WriteString("\n")

	b.WriteString(m.renderComments())

	return b.String()
}

// renderImage draws the sheet image placeholder; the frame width tracks
// the zoom factor so zooming has a visible effect in the terminal.
func (m *Model) renderImage() string {
	cur, ok := m.session.Current()
	if !ok {
		return ""
	}

	zoom := m.session.Zoom()
	percent := int(math.Round(zoom * 100))

	src := cur.ImageURL(m.imageBase)
	if src == "" {
		return styles.help.Render("(no sheet image)") + "\n"
	}

	frameWidth := int(float64(24) * zoom)
	maxWidth := m.width - m.width*2/5 - 6
	if frameWidth > maxWidth && maxWidth > 10 {
		frameWidth = maxWidth
	}

	content := fmt.Sprintf("♪ %s\nZoom: %d%%", src, percent)
	return styles.frame.Width(frameWidth).Render(content) + "\n"
}

func (m *Model) renderComments() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Comments"))
	b.WriteString("\n")

	switch m.commentsState {
	case commentsLoading:
		b.WriteString(styles.help.Render("Loading comments…"))
		b.WriteString("\n")
	case commentsFailed:
		b.WriteString(styles.err.Render("Error loading comments."))
		b.WriteString("\n")
	case commentsReady:
		if len(m.comments) == 0 {
			b.WriteString(styles.help.Render("No comments yet."))
			b.WriteString("\n")
		} else {
			// Server order, never re-sorted client-side.
			for _, c := range m.comments {
				b.WriteString(styles.ok.Render(c.Header()))
				b.WriteString("\n")
				b.WriteString(c.Body)
				b.WriteString("\n\n")
			}
		}
	}

	if m.banner != "" {
		if m.bannerIsErr {
			b.WriteString(styles.err.Render(m.banner))
		} else {
			b.WriteString(styles.ok.Render(m.banner))
		}
		b.WriteString("\n")
	}

	if m.focus == focusName || m.focus == focusBody {
		b.WriteString("\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
		b.WriteString(m.bodyInput.View())
		b.WriteString("\n")
		if m.submitting {
			b.WriteString(styles.warn.Render("Submitting…"))
		} else {
			b.WriteString(styles.help.Render("tab switch field · ctrl+s submit · esc back"))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(styles.help.Render("press c to comment"))
		b.WriteString("\n")
	}

	return b.String()
}
