package service

import (
	"context"
	"time"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
)

type roomReader interface {
	ByID(ctx context.Context, id string) (*domain.Room, error)
}

type overlapScanner interface {
	HasOverlap(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error)
}

// AvailabilityChecker answers whether a room can take a stay. Pure query,
// no side effects; the race-safe re-check happens inside the booking
// repository's write transactions.
type AvailabilityChecker struct {
	rooms    roomReader
	bookings overlapScanner
}

func NewAvailabilityChecker(rooms roomReader, bookings overlapScanner) *AvailabilityChecker {
	return &AvailabilityChecker{rooms: rooms, bookings: bookings}
}

// IsAvailable reports whether the room is operational and no other active
// booking overlaps [checkIn, checkOut). The range is taken literally; date
// ordering is the caller's job. excludeBookingID skips one booking when an
// existing stay is being edited.
func (c *AvailabilityChecker) IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error) {
	room, err := c.rooms.ByID(ctx, roomID)
	if err != nil {
		return false, err
	}
	if room.Status != domain.RoomAvailable {
		return false, nil
	}
	overlap, err := c.bookings.HasOverlap(ctx, roomID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}
