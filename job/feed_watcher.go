package job

import (
	"context"
	"sync"
	"time"

	"intmon/domain"
	"intmon/utils/logger"
)

// IngestFunc runs one ingest cycle for one feed.
type IngestFunc func(ctx context.Context, feed *domain.FeedSource) domain.IngestResult

// FeedWatcher polls a single feed on a fixed interval and delivers the
// cycles that produced new items on its Results channel. Consumers
// range over Results; the channel closes when the watcher stops.
type FeedWatcher struct {
	feed     *domain.FeedSource
	ingest   IngestFunc
	interval time.Duration

	results chan domain.IngestResult
	cancel  context.CancelFunc
	done    chan struct{}

	mu      sync.Mutex
	stopped bool
}

func NewFeedWatcher(feed *domain.FeedSource, ingest IngestFunc, interval time.Duration) *FeedWatcher {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &FeedWatcher{
		feed:     feed,
		ingest:   ingest,
		interval: interval,
		results:  make(chan domain.IngestResult, 1),
		done:     make(chan struct{}),
	}
}

// Results is the delivery channel. Only cycles with at least one new
// item are delivered; empty and failed cycles are logged by the gate.
func (w *FeedWatcher) Results() <-chan domain.IngestResult {
	return w.results
}

// Start begins polling. The first cycle runs immediately. Calling
// Start on a stopped or already started watcher is a no-op; the
// Results channel is closed for good once Stop has run.
func (w *FeedWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.stopped || w.cancel != nil {
		w.mu.Unlock()
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	w.mu.Unlock()

	go func() {
		defer close(w.done)

		w.runCycle(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.SafeInfo("feed watcher stopping", "url", w.feed.URL)
				return
			case <-ticker.C:
				w.runCycle(ctx)
			}
		}
	}()
}

func (w *FeedWatcher) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	result := w.ingest(ctx, w.feed)
	if result.Err != nil || result.NewItemCount == 0 {
		return
	}

	select {
	case w.results <- result:
	case <-ctx.Done():
	}
}

// Stop halts polling and closes the Results channel. Safe to call more
// than once and before Start; once stopped the watcher cannot be
// restarted.
func (w *FeedWatcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	cancel := w.cancel
	w.mu.Unlock()

	if cancel != nil {
		cancel()
		<-w.done
	}
	close(w.results)
}
