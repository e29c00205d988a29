// Package browse implements the client-side state engine for the hymn browser.
//
// The package has no UI or network imports so every transition is testable
// without a rendering surface:
//   - [Filter] : derives the visible subsequence of the collection from the
//     search query and the favorites-only mode, preserving collection order
//   - [Session] : owns collection, filter inputs, selection, zoom and the
//     selection generation counter; all state moves through its methods
//   - [SwipeTracker] : pure horizontal-swipe recognizer fed by pointer
//     press/release coordinates
//
// The Session treats the filtered view as a circular sequence: advancing
// past the last hymn wraps to the first and vice versa. Asynchronous
// consumers (comment loads) snapshot Generation() when they start and
// discard their result if the session has moved on by the time it arrives.
package browse
