package support

import "errors"

var (
	// ErrTicketNotFound возвращается, когда обращение не найдено
	ErrTicketNotFound = errors.New("support.repository: ticket not found")

	ErrBuildQuery = errors.New("support.repository: failed to build query")
	ErrExecQuery  = errors.New("support.repository: failed to execute query")
	ErrScanRow    = errors.New("support.repository: failed to scan row")
)
