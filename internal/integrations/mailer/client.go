package mailer

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Config параметры SMTP сервера
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPClient отправляет письма через SMTP с PLAIN-аутентификацией
type SMTPClient struct {
	cfg      Config
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPClient создает клиент SMTP
func NewSMTPClient(cfg Config) *SMTPClient {
	return &SMTPClient{cfg: cfg, sendMail: smtp.SendMail}
}

// Send отправляет письмо. Отмена ctx прерывает ожидание, но не само SMTP-соединение.
func (c *SMTPClient) Send(ctx context.Context, msg Message) error {
	if err := validate(msg); err != nil {
		return err
	}

	addr := net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))
	var auth smtp.Auth
	if c.cfg.Username != "" {
		auth = smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
	}

	done := make(chan error, 1)
	go func() {
		done <- c.sendMail(addr, auth, c.cfg.From, []string{msg.To}, buildMIME(c.cfg.From, msg, time.Now()))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, msg.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, msg.To, ctx.Err())
	}
}

// LogSender пишет письма в лог вместо отправки
type LogSender struct {
	logger Logger
}

func NewLogSender(logger Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	if err := validate(msg); err != nil {
		return err
	}
	s.logger.Info("mailer: message id=%s to=%s subject=%q (smtp disabled)", msg.ID, msg.To, msg.Subject)
	return nil
}

func validate(msg Message) error {
	if strings.TrimSpace(msg.To) == "" || strings.TrimSpace(msg.Subject) == "" {
		return fmt.Errorf("%w: recipient and subject are required", ErrInvalidMessage)
	}
	return nil
}

func buildMIME(from string, msg Message, now time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	if msg.ID != "" {
		b.WriteString("Message-ID: <" + msg.ID + "@carwash>\r\n")
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}
