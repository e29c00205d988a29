package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/kimandshin/hymn/internal/browse"
	"github.com/kimandshin/hymn/internal/favorites"
	"github.com/kimandshin/hymn/internal/models"
	"github.com/kimandshin/hymn/internal/services"
)

// focusArea identifies which control receives key input.
type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusName
	focusBody
)

// commentsState represents the comment panel lifecycle.
type commentsState int

const (
	commentsIdle commentsState = iota // no selection
	commentsLoading
	commentsReady
	commentsFailed
)

// Terminal cells approximated as device pixels for the swipe threshold.
// A text cell is roughly 10x20 px in common terminal fonts.
const (
	cellWidthPx  = 10
	cellHeightPx = 20
)

type hymnsFetchedMsg struct {
	hymns []models.Hymn
	err   error
}

// commentsFetchedMsg carries the selection generation it was issued under;
// stale generations are dropped on arrival.
type commentsFetchedMsg struct {
	gen      uint64
	comments []models.Comment
	err      error
}

type commentSubmittedMsg struct {
	hymnID string
	err    error
}

// Opts contains optional dependencies for the browser model.
type Opts struct {
	ImageBase string        // prefix for relative sheet image paths
	Preloaded []models.Hymn // offline snapshot; skips the initial fetch when non-nil
	Logger    *log.Logger
}

// Model represents the browser application state.
type Model struct {
	ctx     context.Context
	svc     services.Service
	favs    *favorites.Store
	session *browse.Session
	logger  *log.Logger

	imageBase string
	preloaded []models.Hymn

	width  int
	height int

	focus     focusArea
	hymnList  list.Model
	search    textinput.Model
	nameInput textinput.Model
	bodyInput textarea.Model

	comments      []models.Comment
	commentsState commentsState
	loadedGen     uint64
	submitting    bool
	banner        string
	bannerIsErr   bool

	loadErr error

	swipe *browse.SwipeTracker
	help  help.Model
	keys  keyMap
}

// NewModel creates a browser model backed by svc for remote data and favs
// for the persisted favorites set.
func NewModel(ctx context.Context, svc services.Service, favs *favorites.Store, opts Opts) *Model {
	search := textinput.New()
	search.Placeholder = "Search hymns..."
	search.Prompt = "/ "

	name := textinput.New()
	name.Placeholder = "Name (optional)"

	body := textarea.New()
	body.Placeholder = "Write a comment..."
	body.SetHeight(3)

	hymnList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	hymnList.Title = "Hymns"
	hymnList.SetFilteringEnabled(false)
	hymnList.SetShowStatusBar(false)
	hymnList.SetShowHelp(false)

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Model{
		ctx:       ctx,
		svc:       svc,
		favs:      favs,
		session:   browse.NewSession(favs),
		logger:    logger,
		imageBase: opts.ImageBase,
		preloaded: opts.Preloaded,
		hymnList:  hymnList,
		search:    search,
		nameInput: name,
		bodyInput: body,
		swipe:     browse.NewSwipeTracker(),
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Session exposes the underlying browse session for tests.
func (m *Model) Session() *browse.Session { return m.session }

// Init fetches the hymn collection.
func (m *Model) Init() tea.Cmd {
	return m.fetchHymns()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case focusSearch:
			return m.handleSearchKeys(msg)
		case focusName, focusBody:
			return m.handleCommentKeys(msg)
		default:
			return m.handleListKeys(msg)
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case hymnsFetchedMsg:
		if msg.err != nil {
			m.logger.Error("failed to load hymns", "err", msg.err)
			m.loadErr = msg.err
			return m, nil
		}
		m.loadErr = nil
		m.session.SetHymns(msg.hymns)
		return m, m.afterStateChange()

	case commentsFetchedMsg:
		// Late response for a previous selection; the panel already
		// belongs to a newer hymn.
		if msg.gen != m.session.Generation() {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Error("failed to load comments", "err", msg.err)
			m.commentsState = commentsFailed
			m.comments = nil
			return m, nil
		}
		m.commentsState = commentsReady
		m.comments = msg.comments
		return m, nil

	case commentSubmittedMsg:
		return m.handleSubmitted(msg)
	}

	return m, nil
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.focus = focusSearch
		return m, m.search.Focus()
	case "left", "h":
		m.session.Advance(-1)
		return m, m.afterStateChange()
	case "right", "l":
		m.session.Advance(1)
		return m, m.afterStateChange()
	case "f":
		if cur, ok := m.session.Current(); ok {
			m.favs.Toggle(cur.ID.String())
			m.session.Refilter()
			return m, m.afterStateChange()
		}
		return m, nil
	case "F":
		m.session.ToggleFavoritesOnly()
		return m, m.afterStateChange()
	case "+", "=":
		m.session.ZoomIn()
		return m, nil
	case "-":
		m.session.ZoomOut()
		return m, nil
	case "c":
		if m.session.SelectedID() != "" {
			m.focus = focusName
			m.bodyInput.Blur()
			return m, m.nameInput.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.hymnList, cmd = m.hymnList.Update(msg)

	// Cursor movement selects directly, like clicking a list row.
	if idx := m.hymnList.Index(); idx >= 0 && idx != m.session.SelectedIndex() {
		m.session.SelectIndex(idx)
		return m, tea.Batch(cmd, m.afterStateChange())
	}

	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.focus = focusList
		m.search.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	// The filter reruns on every input change, not on confirm.
	if m.search.Value() != m.session.Query() {
		m.session.SetQuery(m.search.Value())
		return m, tea.Batch(cmd, m.afterStateChange())
	}

	return m, cmd
}

func (m *Model) handleCommentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusList
		m.nameInput.Blur()
		m.bodyInput.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.focus == focusName {
			m.focus = focusBody
			m.nameInput.Blur()
			return m, m.bodyInput.Focus()
		}
		m.focus = focusName
		m.bodyInput.Blur()
		return m, m.nameInput.Focus()
	case "ctrl+s":
		return m, m.submitComment()
	}

	var cmd tea.Cmd
	if m.focus == focusName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.swipe.Begin(msg.X*cellWidthPx, msg.Y*cellHeightPx)
		}
	case tea.MouseActionRelease:
		if delta := m.swipe.End(msg.X*cellWidthPx, msg.Y*cellHeightPx); delta != 0 {
			m.session.Advance(delta)
			return m, m.afterStateChange()
		}
	}
	return m, nil
}

func (m *Model) handleSubmitted(msg commentSubmittedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false

	if msg.err != nil {
		var srvErr *services.ServerError
		if errors.As(msg.err, &srvErr) {
			// Server-provided message, shown verbatim.
			m.banner = "Error from server: " + srvErr.Message
		} else {
			m.logger.Error("failed to add comment", "err", msg.err)
			m.banner = "Error adding comment."
		}
		m.bannerIsErr = true
		// Typed text stays intact for retry.
		return m, nil
	}

	m.bodyInput.Reset()
	m.banner = "Comment added."
	m.bannerIsErr = false

	// Source of truth is a fresh fetch, never a local insert. Skip the
	// reload if the user has navigated away since typing.
	if msg.hymnID == m.session.SelectedID() {
		m.commentsState = commentsLoading
		m.comments = nil
		return m, m.fetchComments(msg.hymnID, m.session.Generation())
	}
	return m, nil
}

// afterStateChange re-syncs the list pane with the session and kicks off a
// comment reload when the selection generation moved.
func (m *Model) afterStateChange() tea.Cmd {
	m.refreshList()
	return m.maybeReloadComments()
}

func (m *Model) refreshList() {
	filtered := m.session.Filtered()
	items := make([]list.Item, len(filtered))
	for i, h := range filtered {
		items[i] = hymnItem{hymn: h}
	}
	m.hymnList.SetItems(items)

	if idx := m.session.SelectedIndex(); idx >= 0 {
		m.hymnList.Select(idx)
	}
}

// maybeReloadComments starts a comment load iff the selection generation
// advanced since the last load was issued.
func (m *Model) maybeReloadComments() tea.Cmd {
	gen := m.session.Generation()
	if gen == m.loadedGen {
		return nil
	}
	m.loadedGen = gen
	m.banner = ""

	id := m.session.SelectedID()
	if id == "" {
		m.commentsState = commentsIdle
		m.comments = nil
		return nil
	}

	m.commentsState = commentsLoading
	m.comments = nil
	return m.fetchComments(id, gen)
}

func (m *Model) fetchHymns() tea.Cmd {
	if m.preloaded != nil {
		hymns := m.preloaded
		return func() tea.Msg {
			return hymnsFetchedMsg{hymns: hymns}
		}
	}
	return func() tea.Msg {
		hymns, err := m.svc.ListHymns(m.ctx)
		return hymnsFetchedMsg{hymns: hymns, err: err}
	}
}

func (m *Model) fetchComments(hymnID string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		comments, err := m.svc.ListComments(m.ctx, hymnID)
		return commentsFetchedMsg{gen: gen, comments: comments, err: err}
	}
}

func (m *Model) submitComment() tea.Cmd {
	// Resubmission is blocked while a submission is in flight.
	if m.submitting {
		return nil
	}

	cur, ok := m.session.Current()
	if !ok {
		return nil
	}

	body := strings.TrimSpace(m.bodyInput.Value())
	if body == "" {
		// Rejected client-side; no network call.
		m.banner = "Comment cannot be empty."
		m.bannerIsErr = true
		return nil
	}

	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		name = "Anonymous"
	}

	m.submitting = true
	m.banner = ""

	id := cur.ID.String()
	return func() tea.Msg {
		err := m.svc.AddComment(m.ctx, id, name, body)
		return commentSubmittedMsg{hymnID: id, err: err}
	}
}

func (m *Model) resize() {
	listWidth := m.width * 2 / 5
	if listWidth < 24 {
		listWidth = 24
	}
	m.hymnList.SetSize(listWidth-2, m.height-6)
	m.search.Width = listWidth - 6
	m.nameInput.Width = m.width - listWidth - 8
	m.bodyInput.SetWidth(m.width - listWidth - 8)
}
