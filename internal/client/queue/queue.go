// Package queue implements the durable offline operation queue. Writes
// made while the server is unreachable are captured as pending operations
// and replayed in order once connectivity returns.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/brunoga/deep"

	"github.com/fieldsync/parcelsync/internal/client/api"
	"github.com/fieldsync/parcelsync/internal/client/storage"
	"github.com/fieldsync/parcelsync/internal/models"
)

const (
	// MaxRetries is the retry ceiling per operation. An operation that
	// fails transiently this many times is dropped as exhausted.
	MaxRetries = 5

	// MaxAge is how long an operation may wait in the queue. Older
	// operations are dropped unsent; the document they came from still
	// converges through a later full sync.
	MaxAge = 24 * time.Hour

	// attemptTimeout bounds a single replay attempt
	attemptTimeout = 15 * time.Second

	// flushInterval is the periodic background flush cadence
	flushInterval = 5 * time.Minute
)

// Drop reasons recorded in FlushReport.Dropped.
const (
	DropRejected  = "rejected"  // server rejected permanently (4xx)
	DropExpired   = "expired"   // older than MaxAge, never sent
	DropExhausted = "exhausted" // hit the retry ceiling
)

// DroppedOperation identifies one operation removed from the queue
// without being replayed, so callers can react to the loss (e.g.
// retract a photo record whose binary upload was dropped).
type DroppedOperation struct {
	ID     string // operation ID
	Target string // request path the operation addressed
	Reason string // DropRejected, DropExpired or DropExhausted
	Err    string // last error, empty for expired operations
}

// FlushReport summarizes one flush pass over the queue.
type FlushReport struct {
	Flushed   int // replayed successfully
	Rejected  int // dropped, server rejected permanently (4xx)
	Expired   int // dropped, older than MaxAge
	Exhausted int // dropped, hit the retry ceiling
	Remaining int // still queued after the pass

	// Dropped identifies every operation counted in Rejected, Expired
	// or Exhausted, with its last error.
	Dropped []DroppedOperation
}

// FlushFunc observes the report of each background flush; see Run.
type FlushFunc func(context.Context, *FlushReport)

// Queue replays pending operations against the server in enqueue order.
// The backing storage is the source of truth; every mutation is persisted
// before it is acknowledged, so a crash never loses accepted work.
type Queue struct {
	apiClient api.ClientAPI
	store     storage.QueueStorage
	logger    *slog.Logger

	// now is replaceable in tests
	now func() time.Time

	mu sync.Mutex
}

// New creates a queue backed by store
func New(apiClient api.ClientAPI, store storage.QueueStorage, logger *slog.Logger) *Queue {
	return &Queue{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// Enqueue appends op to the durable queue. The operation is snapshotted
// first so later caller mutations of the payload cannot change what gets
// replayed.
func (q *Queue) Enqueue(ctx context.Context, op models.PendingOperation) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	op = deep.MustCopy(op)
	if op.EnqueuedAt.IsZero() {
		op.EnqueuedAt = q.now().UTC()
	}

	ops, err := q.store.GetQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to load queue: %w", err)
	}

	ops = append(ops, op)
	if err := q.store.SaveQueue(ctx, ops); err != nil {
		return fmt.Errorf("failed to persist queue: %w", err)
	}

	q.logger.Info("Operation queued", "operation_id", op.ID, "target", op.Target, "pending", len(ops))
	return nil
}

// PendingCount returns the number of queued operations
func (q *Queue) PendingCount(ctx context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.store.GetQueue(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load queue: %w", err)
	}
	return len(ops), nil
}

// Flush replays queued operations in order, one attempt per operation
// per pass. A transient failure stops the pass so later operations never
// overtake an earlier one; a permanent rejection drops the operation and
// moves on. The surviving queue is persisted before Flush returns.
func (q *Queue) Flush(ctx context.Context) (*FlushReport, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.store.GetQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	report := &FlushReport{}
	remaining := make([]models.PendingOperation, 0, len(ops))

	for i, op := range ops {
		if op.Age(q.now()) > MaxAge {
			report.Expired++
			report.Dropped = append(report.Dropped, DroppedOperation{
				ID: op.ID, Target: op.Target, Reason: DropExpired,
			})
			q.logger.Warn("Dropping expired operation",
				"operation_id", op.ID, "enqueued_at", op.EnqueuedAt)
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		_, err := q.apiClient.DoOperation(attemptCtx, op)
		cancel()

		if err == nil {
			report.Flushed++
			q.logger.Info("Operation replayed", "operation_id", op.ID, "target", op.Target)
			continue
		}

		if api.IsPermanent(err) {
			report.Rejected++
			report.Dropped = append(report.Dropped, DroppedOperation{
				ID: op.ID, Target: op.Target, Reason: DropRejected, Err: err.Error(),
			})
			q.logger.Warn("Dropping rejected operation",
				"operation_id", op.ID, "error", err)
			continue
		}

		// transient failure
		op.RetryCount++
		if op.RetryCount >= MaxRetries {
			report.Exhausted++
			report.Dropped = append(report.Dropped, DroppedOperation{
				ID: op.ID, Target: op.Target, Reason: DropExhausted, Err: err.Error(),
			})
			q.logger.Warn("Dropping exhausted operation",
				"operation_id", op.ID, "retries", op.RetryCount)
			continue
		}

		q.logger.Info("Operation attempt failed, keeping queued",
			"operation_id", op.ID, "retries", op.RetryCount, "error", err)
		remaining = append(remaining, op)

		// keep the rest untouched for the next pass
		remaining = append(remaining, ops[i+1:]...)
		break
	}

	report.Remaining = len(remaining)

	if err := q.store.SaveQueue(ctx, remaining); err != nil {
		return nil, fmt.Errorf("failed to persist queue: %w", err)
	}

	return report, nil
}

// Run flushes the queue in the background until ctx is cancelled:
// immediately when connectivity returns, and on a slow timer as a
// safety net. online delivers offline-to-online edge events, typically
// from connectivity.Monitor.Subscribe. onFlush, when non-nil, receives
// the report of every completed flush.
func (q *Queue) Run(ctx context.Context, online <-chan struct{}, onFlush FlushFunc) {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-online:
			q.flushAndLog(ctx, "connectivity restored", onFlush)
		case <-ticker.C:
			q.flushAndLog(ctx, "periodic", onFlush)
		}
	}
}

func (q *Queue) flushAndLog(ctx context.Context, reason string, onFlush FlushFunc) {
	report, err := q.Flush(ctx)
	if err != nil {
		q.logger.Error("Queue flush failed", "reason", reason, "error", err)
		return
	}
	if onFlush != nil {
		onFlush(ctx, report)
	}
	if report.Flushed+report.Rejected+report.Expired+report.Exhausted > 0 {
		q.logger.Info("Queue flushed",
			"reason", reason,
			"flushed", report.Flushed,
			"rejected", report.Rejected,
			"expired", report.Expired,
			"exhausted", report.Exhausted,
			"remaining", report.Remaining)
	}
}
