package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/printeasy/printeasy/internal/domain/model"
)

// CleanupFacade exposes the subset of application functionality required by the worker.
type CleanupFacade interface {
	PendingMediaDeletions(ctx context.Context, limit int) ([]model.MediaDeletion, error)
	DestroyMedia(ctx context.Context, remoteID string) error
	FinishMediaDeletion(ctx context.Context, id int64) error
	FailMediaDeletion(ctx context.Context, id int64, message string) error
}

// Cleanup drains the media deletion queue concurrently. Entries that fail
// stay queued and come back on a later poll.
type Cleanup struct {
	facade       CleanupFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.MediaDeletion
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCleanup constructs the cleanup worker pool.
func NewCleanup(facade CleanupFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *Cleanup {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Cleanup{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.MediaDeletion, batchSize*workers),
	}
}

// Start launches background processing.
func (c *Cleanup) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker(runCtx)
	}

	c.wg.Add(1)
	go c.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (c *Cleanup) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Cleanup) dispatch(ctx context.Context) {
	defer c.wg.Done()
	defer close(c.jobs)
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.fetchAndDispatch(ctx)
		}
	}
}

func (c *Cleanup) fetchAndDispatch(ctx context.Context) {
	deletions, err := c.facade.PendingMediaDeletions(ctx, c.batchSize)
	if err != nil {
		c.logger.Error("fetch media deletions failed", slog.String("error", err.Error()))
		return
	}
	for _, deletion := range deletions {
		select {
		case <-ctx.Done():
			return
		case c.jobs <- deletion:
		}
	}
}

func (c *Cleanup) worker(ctx context.Context) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case deletion, ok := <-c.jobs:
			if !ok {
				return
			}
			c.handleDeletion(ctx, deletion)
		}
	}
}

func (c *Cleanup) handleDeletion(ctx context.Context, deletion model.MediaDeletion) {
	if err := c.facade.DestroyMedia(ctx, deletion.RemoteID); err != nil {
		c.logger.Warn("media destroy failed",
			slog.String("remote_id", deletion.RemoteID),
			slog.Int("attempts", deletion.Attempts),
			slog.String("error", err.Error()),
		)
		if err := c.facade.FailMediaDeletion(ctx, deletion.ID, err.Error()); err != nil {
			c.logger.Error("record media deletion failure", slog.String("error", err.Error()))
		}
		return
	}

	if err := c.facade.FinishMediaDeletion(ctx, deletion.ID); err != nil {
		c.logger.Error("finish media deletion failed",
			slog.String("remote_id", deletion.RemoteID),
			slog.String("error", err.Error()),
		)
	}
}
