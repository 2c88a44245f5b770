package connectivity

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestMonitor_StartsOffline(t *testing.T) {
	m := NewMonitor(&ProberMock{}, time.Minute, testLogger())
	assert.False(t, m.Online())
}

func TestMonitor_ProbeSuccess_SetsOnline(t *testing.T) {
	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error { return nil },
	}
	m := NewMonitor(prober, time.Minute, testLogger())

	m.probe(context.Background())
	assert.True(t, m.Online())
}

func TestMonitor_Probe_ReturnsState(t *testing.T) {
	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error { return nil },
	}
	m := NewMonitor(prober, time.Minute, testLogger())

	assert.True(t, m.Probe(context.Background()))
	assert.True(t, m.Online())
}

func TestMonitor_ProbeFailure_SetsOffline(t *testing.T) {
	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error { return errors.New("connection refused") },
	}
	m := NewMonitor(prober, time.Minute, testLogger())

	m.probe(context.Background())
	assert.False(t, m.Online())
}

func TestMonitor_OfflineToOnlineEdge_NotifiesSubscribers(t *testing.T) {
	errs := []error{errors.New("down"), nil}
	var call int
	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error {
			err := errs[call]
			if call < len(errs)-1 {
				call++
			}
			return err
		},
	}

	m := NewMonitor(prober, time.Minute, testLogger())
	ch := m.Subscribe()

	m.probe(context.Background()) // offline
	select {
	case <-ch:
		t.Fatal("no edge expected while offline")
	default:
	}

	m.probe(context.Background()) // offline -> online
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected edge notification")
	}
}

func TestMonitor_StayingOnline_NoRepeatNotification(t *testing.T) {
	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error { return nil },
	}
	m := NewMonitor(prober, time.Minute, testLogger())
	ch := m.Subscribe()

	m.probe(context.Background()) // offline -> online
	<-ch

	m.probe(context.Background()) // still online
	select {
	case <-ch:
		t.Fatal("no edge expected while staying online")
	default:
	}
}

func TestMonitor_Run_StopsOnContextCancel(t *testing.T) {
	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error { return nil },
	}
	m := NewMonitor(prober, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	require.Eventually(t, m.Online, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
