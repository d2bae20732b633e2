package domain

import "time"

// SupportStatus lifecycle of a support ticket
type SupportStatus string

const (
	SupportStatusNew        SupportStatus = "new"
	SupportStatusInProgress SupportStatus = "in_progress"
	SupportStatusResolved   SupportStatus = "resolved"
)

// IsValid reports whether s is a known ticket status
func (s SupportStatus) IsValid() bool {
	switch s {
	case SupportStatusNew, SupportStatusInProgress, SupportStatusResolved:
		return true
	}
	return false
}

// SupportTicket customer message to staff
type SupportTicket struct {
	ID        int64
	UserID    string
	UserName  string
	UserEmail string
	Message   string
	Status    SupportStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
