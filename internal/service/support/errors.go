package support

import "errors"

var (
	// ErrTicketNotFound возвращается, когда обращение не найдено
	ErrTicketNotFound = errors.New("support ticket not found")

	// ErrInvalidStatus возвращается при неизвестном статусе обращения
	ErrInvalidStatus = errors.New("invalid support status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
