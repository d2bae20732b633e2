package notifications

import (
	"context"

	"github.com/mhmdxx5/CarWashBackend/internal/integrations/mailer"
)

// Sender доставляет письмо
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Enqueuer ставит письмо в очередь, не блокируя вызывающего
type Enqueuer interface {
	Enqueue(msg mailer.Message) bool
}

// Metrics учет результатов доставки
type Metrics interface {
	IncNotification(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
