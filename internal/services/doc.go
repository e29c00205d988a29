// Package services defines the [Service] interface for the hymn archive and implements it over HTTP.
//
// # Service Interface
//
// The archive exposes one endpoint dispatching on an "action" query
// parameter: list (full collection), comments (per-hymn thread), and
// addComment (the single write). [ArchiveService] implements all three.
//
// # Error Handling
//
// Two failure modes are deliberately distinct:
//   - Transport/decode failures are returned as wrapped errors; callers
//     surface a generic message.
//   - A server-rejected write arrives in a syntactically valid payload as
//     an "error" field; it is returned as a [*ServerError] and its message
//     is shown to the user verbatim. It is never a successful submission.
//
// # Rate Limiting
//
// The archive runs on a shared script host with per-deployment quotas, so
// every request waits on a client-side golang.org/x/time/rate limiter.
//
// # Encoding
//
// All identifiers and free-text parameters are percent-encoded via
// url.Values before being placed in the query string.
package services
