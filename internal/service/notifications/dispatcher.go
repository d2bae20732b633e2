package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/mhmdxx5/CarWashBackend/internal/integrations/mailer"
)

// Результаты доставки для метрик
const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultDropped = "dropped"
)

// DispatcherConfig параметры пула отправки
type DispatcherConfig struct {
	Workers     int
	QueueSize   int
	SendTimeout time.Duration
	Retry       RetryPolicy
}

// Dispatcher отправляет письма из ограниченной очереди пулом воркеров.
// Переполненная очередь отбрасывает письмо: бронирование не ждет почту.
type Dispatcher struct {
	sender  Sender
	cfg     DispatcherConfig
	metrics Metrics
	logger  Logger

	mu     sync.RWMutex
	queue  chan mailer.Message
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher создает диспетчер. Воркеры запускаются в Start.
func NewDispatcher(sender Sender, cfg DispatcherConfig, metrics Metrics, logger Logger) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Dispatcher{
		sender:  sender,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
		queue:   make(chan mailer.Message, cfg.QueueSize),
	}
}

// Start запускает воркеры. Отмена ctx прерывает ожидание между повторами.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for msg := range d.queue {
				d.deliver(ctx, msg)
			}
		}()
	}
	d.logger.Info("notifications: dispatcher started with %d workers", d.cfg.Workers)
}

// Enqueue ставит письмо в очередь. false, если очередь полна или диспетчер остановлен.
func (d *Dispatcher) Enqueue(msg mailer.Message) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("notifications: dispatcher stopped, message id=%s to=%s dropped", msg.ID, msg.To)
		d.metrics.IncNotification(ResultDropped)
		return false
	}

	select {
	case d.queue <- msg:
		return true
	default:
		d.logger.Warn("notifications: queue full, message id=%s to=%s dropped", msg.ID, msg.To)
		d.metrics.IncNotification(ResultDropped)
		return false
	}
}

// Stop закрывает очередь и ждет, пока воркеры отправят оставшиеся письма
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.logger.Info("notifications: dispatcher stopped")
}

type noopMetrics struct{}

func (noopMetrics) IncNotification(string) {}

func (d *Dispatcher) deliver(ctx context.Context, msg mailer.Message) {
	for attempt := 1; ; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
		err := d.sender.Send(sendCtx, msg)
		cancel()

		if err == nil {
			d.metrics.IncNotification(ResultSent)
			return
		}

		if attempt > d.cfg.Retry.MaxRetries {
			d.logger.Error("notifications: message id=%s to=%s failed after %d attempts: %v", msg.ID, msg.To, attempt, err)
			d.metrics.IncNotification(ResultFailed)
			return
		}

		delay := d.cfg.Retry.NextDelay(attempt)
		d.logger.Warn("notifications: message id=%s attempt %d failed, retry in %s: %v", msg.ID, attempt, delay, err)

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			d.logger.Error("notifications: message id=%s abandoned: %v", msg.ID, ctx.Err())
			d.metrics.IncNotification(ResultFailed)
			return
		}
	}
}
