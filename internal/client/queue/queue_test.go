package queue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsync/parcelsync/internal/client/api"
	"github.com/fieldsync/parcelsync/internal/client/storage"
	"github.com/fieldsync/parcelsync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// memoryQueueStore backs the QueueStorage mock with a slice
func memoryQueueStore() (*storage.QueueStorageMock, *[]models.PendingOperation) {
	stored := []models.PendingOperation{}
	mock := &storage.QueueStorageMock{
		GetQueueFunc: func(ctx context.Context) ([]models.PendingOperation, error) {
			out := make([]models.PendingOperation, len(stored))
			copy(out, stored)
			return out, nil
		},
		SaveQueueFunc: func(ctx context.Context, ops []models.PendingOperation) error {
			stored = make([]models.PendingOperation, len(ops))
			copy(stored, ops)
			return nil
		},
	}
	return mock, &stored
}

func op(id string) models.PendingOperation {
	return models.PendingOperation{
		ID:      id,
		Method:  http.MethodPost,
		Target:  "/api/v1/parcels/" + id + "/sync",
		Payload: []byte(`{"update":"ZGF0YQ=="}`),
	}
}

func TestEnqueue_PersistsWithTimestamp(t *testing.T) {
	store, stored := memoryQueueStore()
	q := New(&api.ClientAPIMock{}, store, testLogger())

	require.NoError(t, q.Enqueue(context.Background(), op("op-1")))
	require.NoError(t, q.Enqueue(context.Background(), op("op-2")))

	require.Len(t, *stored, 2)
	assert.Equal(t, "op-1", (*stored)[0].ID)
	assert.Equal(t, "op-2", (*stored)[1].ID)
	assert.False(t, (*stored)[0].EnqueuedAt.IsZero())

	count, err := q.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestEnqueue_SnapshotsPayload(t *testing.T) {
	store, stored := memoryQueueStore()
	q := New(&api.ClientAPIMock{}, store, testLogger())

	o := op("op-1")
	require.NoError(t, q.Enqueue(context.Background(), o))

	// mutating the caller's slice must not change the queued payload
	o.Payload[0] = 'X'

	assert.Equal(t, byte('{'), (*stored)[0].Payload[0])
}

func TestFlush_ReplaysInOrder(t *testing.T) {
	store, _ := memoryQueueStore()

	var replayed []string
	apiMock := &api.ClientAPIMock{
		DoOperationFunc: func(ctx context.Context, op models.PendingOperation) ([]byte, error) {
			replayed = append(replayed, op.ID)
			return []byte(`{}`), nil
		},
	}

	q := New(apiMock, store, testLogger())
	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, op("op-1")))
	require.NoError(t, q.Enqueue(ctx, op("op-2")))
	require.NoError(t, q.Enqueue(ctx, op("op-3")))

	report, err := q.Flush(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"op-1", "op-2", "op-3"}, replayed)
	assert.Equal(t, 3, report.Flushed)
	assert.Equal(t, 0, report.Remaining)

	count, err := q.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestFlush_TransientFailure_StopsPassAndKeepsOrder(t *testing.T) {
	store, stored := memoryQueueStore()

	apiMock := &api.ClientAPIMock{
		DoOperationFunc: func(ctx context.Context, o models.PendingOperation) ([]byte, error) {
			if o.ID == "op-2" {
				return nil, errors.New("connection refused")
			}
			return []byte(`{}`), nil
		},
	}

	q := New(apiMock, store, testLogger())
	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, op("op-1")))
	require.NoError(t, q.Enqueue(ctx, op("op-2")))
	require.NoError(t, q.Enqueue(ctx, op("op-3")))

	report, err := q.Flush(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Flushed)
	assert.Equal(t, 2, report.Remaining)

	// op-3 must not have been attempted ahead of op-2
	require.Len(t, *stored, 2)
	assert.Equal(t, "op-2", (*stored)[0].ID)
	assert.Equal(t, "op-3", (*stored)[1].ID)
	assert.Equal(t, 1, (*stored)[0].RetryCount)
	assert.Equal(t, 0, (*stored)[1].RetryCount)
}

func TestFlush_PermanentRejection_DropsAndContinues(t *testing.T) {
	store, stored := memoryQueueStore()

	apiMock := &api.ClientAPIMock{
		DoOperationFunc: func(ctx context.Context, o models.PendingOperation) ([]byte, error) {
			if o.ID == "op-1" {
				return nil, &api.APIError{StatusCode: http.StatusBadRequest, Message: "corrupt update"}
			}
			return []byte(`{}`), nil
		},
	}

	q := New(apiMock, store, testLogger())
	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, op("op-1")))
	require.NoError(t, q.Enqueue(ctx, op("op-2")))

	report, err := q.Flush(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, 1, report.Flushed)
	assert.Empty(t, *stored)

	// the caller learns which operation was dropped and why
	require.Len(t, report.Dropped, 1)
	assert.Equal(t, "op-1", report.Dropped[0].ID)
	assert.Equal(t, "/api/v1/parcels/op-1/sync", report.Dropped[0].Target)
	assert.Equal(t, DropRejected, report.Dropped[0].Reason)
	assert.Contains(t, report.Dropped[0].Err, "corrupt update")
}

func TestFlush_RetryCeiling_DropsExhausted(t *testing.T) {
	store, stored := memoryQueueStore()

	apiMock := &api.ClientAPIMock{
		DoOperationFunc: func(ctx context.Context, o models.PendingOperation) ([]byte, error) {
			return nil, errors.New("timeout")
		},
	}

	q := New(apiMock, store, testLogger())
	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, op("op-1")))

	for i := 0; i < MaxRetries-1; i++ {
		report, err := q.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Remaining)
	}

	// final attempt hits the ceiling
	report, err := q.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Exhausted)
	assert.Equal(t, 0, report.Remaining)
	assert.Empty(t, *stored)

	require.Len(t, report.Dropped, 1)
	assert.Equal(t, DropExhausted, report.Dropped[0].Reason)
	assert.Contains(t, report.Dropped[0].Err, "timeout")
}

func TestFlush_ExpiredOperation_DroppedUnsent(t *testing.T) {
	store, _ := memoryQueueStore()

	var attempts int
	apiMock := &api.ClientAPIMock{
		DoOperationFunc: func(ctx context.Context, o models.PendingOperation) ([]byte, error) {
			attempts++
			return []byte(`{}`), nil
		},
	}

	q := New(apiMock, store, testLogger())
	ctx := context.Background()

	stale := op("op-stale")
	stale.EnqueuedAt = time.Now().Add(-25 * time.Hour)
	require.NoError(t, q.Enqueue(ctx, stale))
	require.NoError(t, q.Enqueue(ctx, op("op-fresh")))

	report, err := q.Flush(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Expired)
	assert.Equal(t, 1, report.Flushed)
	assert.Equal(t, 1, attempts) // stale op never sent

	require.Len(t, report.Dropped, 1)
	assert.Equal(t, "op-stale", report.Dropped[0].ID)
	assert.Equal(t, DropExpired, report.Dropped[0].Reason)
	assert.Empty(t, report.Dropped[0].Err)
}

func TestFlush_EmptyQueue(t *testing.T) {
	store, _ := memoryQueueStore()
	q := New(&api.ClientAPIMock{}, store, testLogger())

	report, err := q.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &FlushReport{}, report)
}

func TestRun_FlushesOnConnectivityEdge(t *testing.T) {
	store, _ := memoryQueueStore()

	flushed := make(chan string, 1)
	apiMock := &api.ClientAPIMock{
		DoOperationFunc: func(ctx context.Context, o models.PendingOperation) ([]byte, error) {
			flushed <- o.ID
			return []byte(`{}`), nil
		},
	}

	q := New(apiMock, store, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, q.Enqueue(ctx, op("op-1")))

	reports := make(chan *FlushReport, 1)
	onFlush := func(ctx context.Context, r *FlushReport) { reports <- r }

	online := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		q.Run(ctx, online, onFlush)
		close(done)
	}()

	online <- struct{}{}

	select {
	case id := <-flushed:
		assert.Equal(t, "op-1", id)
	case <-time.After(time.Second):
		t.Fatal("expected flush after connectivity edge")
	}

	// the flush outcome reaches the registered observer
	select {
	case r := <-reports:
		assert.Equal(t, 1, r.Flushed)
	case <-time.After(time.Second):
		t.Fatal("expected flush report")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
