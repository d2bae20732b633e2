package mailer

// Message письмо для отправки
type Message struct {
	ID      string // идентификатор для логов
	To      string
	Subject string
	HTML    string
}
