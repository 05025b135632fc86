// Package progress owns the upload task lifecycle: submission, the
// fixed-interval status loop, and teardown.
package progress

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-console/core"
)

const defaultPollInterval = 2 * time.Second

// Tracker follows exactly one background task at a time. Submitting a new
// upload supersedes the previous poll loop; the loop itself never stops on
// a terminal status because the tracker does not interpret status
// semantics, it only renders what the server reports.
type Tracker struct {
	Client   core.UploadClient
	Sink     core.ProgressSink
	Interval time.Duration
	Logger   core.Logger

	mu     sync.Mutex
	taskID string
	cancel context.CancelFunc
}

func NewTracker(client core.UploadClient, sink core.ProgressSink) *Tracker {
	_, logger := glog.Resolve("progress", nil, nil)
	return &Tracker{
		Client:   client,
		Sink:     sink,
		Interval: defaultPollInterval,
		Logger:   logger,
	}
}

// Submit uploads the file and, on success, records the new task id,
// reveals the status panel, fetches status once immediately, and replaces
// any running poll loop with a fresh one. On failure the sink shows the
// error and nothing else changes: the previous task id and loop survive.
func (t *Tracker) Submit(ctx context.Context, filename string, file io.Reader) error {
	if t == nil || t.Client == nil || t.Sink == nil {
		return core.NewConsoleError("progress: tracker requires a client and a sink", goerrors.CategoryInternal)
	}
	if strings.TrimSpace(filename) == "" || file == nil {
		return core.NewConsoleError("No file selected.", goerrors.CategoryBadInput)
	}

	task, err := t.Client.Upload(ctx, filename, file)
	if err != nil {
		t.Sink.SubmitFailed(core.DisplayMessage(err))
		return err
	}

	t.mu.Lock()
	t.taskID = task.TaskID
	previous := t.cancel
	loopCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.mu.Unlock()

	if previous != nil {
		previous()
	}

	t.Sink.TaskAccepted(task.TaskID)
	t.FetchStatus(ctx)

	go t.loop(loopCtx)
	return nil
}

// FetchStatus refreshes the panel once. Without a tracked task it is a
// no-op. A failed fetch writes the error text into the message field only;
// the panel stays visible and the next tick retries.
func (t *Tracker) FetchStatus(ctx context.Context) {
	if t == nil || t.Client == nil || t.Sink == nil {
		return
	}
	t.mu.Lock()
	taskID := t.taskID
	t.mu.Unlock()
	if taskID == "" {
		return
	}

	task, err := t.Client.UploadStatus(ctx, taskID)
	if err != nil {
		t.Sink.ProgressMessage(core.DisplayMessage(err))
		return
	}
	t.Sink.Progress(task)
}

// Refresh is the manual, user-triggered variant of FetchStatus and is
// idempotent with the timer-driven call.
func (t *Tracker) Refresh(ctx context.Context) {
	t.FetchStatus(ctx)
}

// Stop tears down the active poll loop, if any. The tracked task id is
// kept so a manual Refresh still works.
func (t *Tracker) Stop() {
	if t == nil {
		return
	}
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// TaskID returns the currently tracked task, empty when idle.
func (t *Tracker) TaskID() string {
	if t == nil {
		return ""
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.taskID
}

func (t *Tracker) loop(ctx context.Context) {
	interval := t.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.FetchStatus(ctx)
		}
	}
}
