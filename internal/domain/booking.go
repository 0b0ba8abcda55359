package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

// Valid reports whether s is part of the closed status vocabulary.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Terminal statuses admit no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// Booking reserves one room for the half-open date range [CheckIn, CheckOut).
// Dates are UTC midnights; Total is fixed in VND at creation/update time.
type Booking struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"index"`
	RoomID    string    `gorm:"index"`
	CheckIn   time.Time `gorm:"index"`
	CheckOut  time.Time `gorm:"index"`
	Total     int64
	Status    BookingStatus `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
