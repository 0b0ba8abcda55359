package domain

import "time"

type RoomStatus string

const (
	RoomAvailable    RoomStatus = "Available"
	RoomMaintenance  RoomStatus = "Maintenance"
	RoomOutOfService RoomStatus = "OutOfService"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomMaintenance, RoomOutOfService:
		return true
	}
	return false
}

type Hotel struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Address   string
	CreatedAt time.Time
}

// RoomType carries the nightly rate in VND. VND has no minor unit, so
// amounts are plain int64 everywhere.
type RoomType struct {
	ID          string `gorm:"primaryKey"`
	HotelID     string `gorm:"index"`
	Name        string
	NightlyRate int64
	Capacity    int32
}

type Room struct {
	ID         string `gorm:"primaryKey"`
	RoomTypeID string `gorm:"index"`
	RoomNumber string `gorm:"uniqueIndex"`
	Status     RoomStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
