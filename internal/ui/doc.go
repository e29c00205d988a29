// Package ui implements the interactive hymn browser using bubbletea's Elm architecture.
//
// The [Model] owns exactly one browse.Session; every user event is mapped
// onto a Session method and the view is re-rendered from the resulting
// state. Layout is two panes: the filtered hymn list on the left and the
// viewer (title, meta line, sheet image reference, zoom, favorite state,
// comment thread) on the right.
//
// Asynchronous work follows the standard tea.Cmd pattern: hymn and comment
// fetches run as commands that resolve into typed messages. Comment
// messages carry the selection generation they were issued under; a
// message whose generation no longer matches the session is discarded, so
// a slow response for a previous hymn can never overwrite the panel of the
// current one.
//
// Navigation: arrow keys (and h/l) move circularly through the filtered
// view, j/k move the list cursor directly, and a horizontal mouse drag on
// the viewer pane acts as a swipe.
package ui
