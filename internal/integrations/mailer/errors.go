package mailer

import "errors"

var (
	// ErrInvalidMessage возвращается, когда у письма нет получателя или темы
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrSendFailed возвращается при ошибке SMTP
	ErrSendFailed = errors.New("mailer: send failed")
)
