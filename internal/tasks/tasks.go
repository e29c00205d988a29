// package tasks implements long-running operations against the hymn archive.
//
// The core abstraction is [ImageEngine], which mirrors the sheet images of
// the collection to local disk. Operations emit progress updates via
// channels for non-blocking status reporting to the CLI layer.
package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	FetchCollection Phase = iota
	DownloadImages
)

func (p Phase) String() string {
	switch p {
	case FetchCollection:
		return "fetch_collection"
	case DownloadImages:
		return "download_images"
	default:
		return ""
	}
}

func downloadUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   DownloadImages,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Downloading sheet image (%d/%d): %s", step, total, title),
	}
}

// sendProgress sends a progress update through the channel without blocking.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
