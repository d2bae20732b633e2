package create_booking

import "errors"

var (
	// ErrUnauthenticated возвращается, когда в запросе нет проверенного пользователя
	ErrUnauthenticated = errors.New("create_booking: unauthenticated")

	// ErrInvalidInput возвращается при некорректных входных данных, вместе с *domain.ValidationError
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCapacityExceeded возвращается, когда на этот час уже есть максимум бронирований
	ErrCapacityExceeded = errors.New("create_booking: hour is fully booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
