package tasks

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/kimandshin/hymn/internal/formatter"
	"github.com/kimandshin/hymn/internal/models"
	"golang.org/x/time/rate"
)

// ImageFetchOpts contains configuration for mirroring sheet images.
type ImageFetchOpts struct {
	OutputDir  string  // Destination directory (default: hymn_images_{epoch})
	ImageBase  string  // Prefix for relative image paths
	NumWorkers int     // Concurrent downloads (default: 5, capped at 10)
	RateLimit  float64 // Requests per second (default: 5)
	Force      bool    // Re-download images that already exist locally
}

// ImageFetchFailure records one hymn whose image could not be mirrored.
type ImageFetchFailure struct {
	HymnID string
	Title  string
	Error  error
}

// ImageFetchResult summarizes a mirror run.
type ImageFetchResult struct {
	Total           int
	Downloaded      int
	Skipped         int
	Failed          int
	Failures        []ImageFetchFailure
	OutputDirectory string
}

// ImageEngine mirrors the sheet images of a hymn collection to local disk.
type ImageEngine struct {
	httpClient *http.Client
}

// NewImageEngine creates an ImageEngine. The client defaults to one with a
// 30s timeout.
func NewImageEngine(client *http.Client) *ImageEngine {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &ImageEngine{httpClient: client}
}

type imageJob struct {
	hymn models.Hymn
	url  string
	dest string
}

type imageResult struct {
	hymn       models.Hymn
	downloaded bool
	skipped    bool
	err        error
}

// FetchAll downloads every hymn's sheet image concurrently with rate
// limiting, skipping hymns without an image reference and files that
// already exist locally (unless opts.Force).
//
// Partial failures are collected in the result rather than aborting the run.
func (e *ImageEngine) FetchAll(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	hymns []models.Hymn,
	opts ImageFetchOpts,
) (*ImageFetchResult, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("hymn_images_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &ImageFetchResult{OutputDirectory: opts.OutputDir}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan imageJob, len(hymns))
	results := make(chan imageResult, len(hymns))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.downloadWorker(ctx, &wg, limiter, jobs, results, opts)
	}

	queued := 0
	for _, h := range hymns {
		url := h.ImageURL(opts.ImageBase)
		if url == "" {
			continue
		}
		jobs <- imageJob{
			hymn: h,
			url:  url,
			dest: filepath.Join(opts.OutputDir, imageFilename(h)),
		}
		queued++
	}
	close(jobs)
	result.Total = queued

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		sendProgress(prog, downloadUpdate(completed, queued, res.hymn.DisplayTitle()))

		switch {
		case res.err != nil:
			result.Failed++
			result.Failures = append(result.Failures, ImageFetchFailure{
				HymnID: res.hymn.ID.String(),
				Title:  res.hymn.DisplayTitle(),
				Error:  res.err,
			})
		case res.skipped:
			result.Skipped++
		case res.downloaded:
			result.Downloaded++
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("image mirror interrupted: %w", err)
	}

	return result, nil
}

// downloadWorker is a worker goroutine that downloads images from the jobs channel.
func (e *ImageEngine) downloadWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	limiter *rate.Limiter,
	jobs <-chan imageJob,
	results chan<- imageResult,
	opts ImageFetchOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			results <- imageResult{hymn: job.hymn, err: ctx.Err()}
			continue
		default:
		}

		if !opts.Force {
			if _, err := os.Stat(job.dest); err == nil {
				results <- imageResult{hymn: job.hymn, skipped: true}
				continue
			}
		}

		if err := limiter.Wait(ctx); err != nil {
			results <- imageResult{hymn: job.hymn, err: err}
			continue
		}

		data, err := formatter.DownloadImage(e.httpClient, job.url)
		if err != nil {
			results <- imageResult{hymn: job.hymn, err: err}
			continue
		}

		if err := os.WriteFile(job.dest, data, 0644); err != nil {
			results <- imageResult{hymn: job.hymn, err: fmt.Errorf("failed to save image: %w", err)}
			continue
		}

		results <- imageResult{hymn: job.hymn, downloaded: true}
	}
}

// imageFilename names the local file for a hymn's sheet image, keeping the
// remote extension when one is present.
func imageFilename(h models.Hymn) string {
	ext := path.Ext(h.ImagePath)
	if ext == "" {
		ext = ".png"
	}
	return h.ID.String() + ext
}
