package schedule

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда для даты нет переопределения
	ErrOverrideNotFound = errors.New("date override not found")

	// ErrInvalidDay возвращается при неизвестном дне недели
	ErrInvalidDay = errors.New("invalid day of week")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
