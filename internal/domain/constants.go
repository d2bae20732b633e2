package domain

// Business rules
const (
	// MaxBookingsPerHour сколько бронирований может начинаться в пределах одного часа (HH:00-HH:59)
	MaxBookingsPerHour = 3

	// HomeServiceSurcharge надбавка за выезд на дом
	HomeServiceSurcharge = 20.0

	MaxNotesLength   = 500
	MaxMessageLength = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
