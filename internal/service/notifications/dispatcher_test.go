package notifications

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxx5/CarWashBackend/internal/integrations/mailer"
	"github.com/mhmdxx5/CarWashBackend/pkg/logger"
	"github.com/mhmdxx5/CarWashBackend/pkg/metrics"
)

type fakeSender struct {
	mu       sync.Mutex
	failures int32 // сколько первых попыток завершатся ошибкой
	calls    atomic.Int32
	sent     []mailer.Message
	block    chan struct{}
}

func (s *fakeSender) Send(ctx context.Context, msg mailer.Message) error {
	n := s.calls.Add(1)
	if s.block != nil {
		<-s.block
	}
	if n <= s.failures {
		return errors.New("smtp unavailable")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return nil
}

func (s *fakeSender) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func fastRetry(max int) RetryPolicy {
	return RetryPolicy{MaxRetries: max, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, BackoffFactor: 2}
}

func counter(m *metrics.Metrics, result string) float64 {
	return testutil.ToFloat64(m.Notifications.WithLabelValues("test", result))
}

func TestRetryPolicy_NextDelay(t *testing.T) {
	p := RetryPolicy{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, BackoffFactor: 2}

	assert.Equal(t, 100*time.Millisecond, p.NextDelay(1))
	assert.Equal(t, 200*time.Millisecond, p.NextDelay(2))
	assert.Equal(t, 400*time.Millisecond, p.NextDelay(3))
	assert.Equal(t, time.Second, p.NextDelay(10))
	assert.Equal(t, 100*time.Millisecond, p.NextDelay(0))

	assert.Equal(t, time.Second, RetryPolicy{}.NextDelay(1))
}

func TestDispatcher_DeliversWithRetry(t *testing.T) {
	sender := &fakeSender{failures: 2}
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	d := NewDispatcher(sender, DispatcherConfig{Workers: 1, QueueSize: 4, Retry: fastRetry(3)}, m, logger.Nop())
	d.Start(context.Background())

	require.True(t, d.Enqueue(mailer.Message{ID: "1", To: "a@b.c", Subject: "x"}))
	d.Stop()

	assert.Equal(t, 1, sender.sentCount())
	assert.Equal(t, int32(3), sender.calls.Load())
	assert.Equal(t, 1.0, counter(m, ResultSent))
	assert.Equal(t, 0.0, counter(m, ResultFailed))
}

func TestDispatcher_GivesUpAfterMaxRetries(t *testing.T) {
	sender := &fakeSender{failures: 100}
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	d := NewDispatcher(sender, DispatcherConfig{Workers: 1, QueueSize: 4, Retry: fastRetry(2)}, m, logger.Nop())
	d.Start(context.Background())

	d.Enqueue(mailer.Message{ID: "1", To: "a@b.c", Subject: "x"})
	d.Stop()

	assert.Equal(t, int32(3), sender.calls.Load())
	assert.Equal(t, 1.0, counter(m, ResultFailed))
}

func TestDispatcher_QueueFullDropsWithoutBlocking(t *testing.T) {
	sender := &fakeSender{block: make(chan struct{})}
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	d := NewDispatcher(sender, DispatcherConfig{Workers: 1, QueueSize: 1, Retry: fastRetry(0)}, m, logger.Nop())
	d.Start(context.Background())

	// первое письмо забирает воркер и блокируется в Send
	require.True(t, d.Enqueue(mailer.Message{ID: "1", To: "a@b.c", Subject: "x"}))
	require.Eventually(t, func() bool { return sender.calls.Load() == 1 }, time.Second, time.Millisecond)

	assert.True(t, d.Enqueue(mailer.Message{ID: "2", To: "a@b.c", Subject: "x"}))
	assert.False(t, d.Enqueue(mailer.Message{ID: "3", To: "a@b.c", Subject: "x"}))
	assert.Equal(t, 1.0, counter(m, ResultDropped))

	close(sender.block)
	d.Stop()
	assert.Equal(t, 2, sender.sentCount())
}

func TestDispatcher_EnqueueAfterStop(t *testing.T) {
	d := NewDispatcher(&fakeSender{}, DispatcherConfig{}, nil, logger.Nop())
	d.Start(context.Background())
	d.Stop()
	d.Stop()

	assert.False(t, d.Enqueue(mailer.Message{ID: "1", To: "a@b.c", Subject: "x"}))
}
