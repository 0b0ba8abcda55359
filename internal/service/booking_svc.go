package service

import (
	"context"
	"time"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
)

// cancelWindow is how far before check-in a guest may still cancel.
// Admins are not bound by it.
const cancelWindow = 24 * time.Hour

const dateLayout = "2006-01-02"

type bookingStore interface {
	CreateNoConflict(ctx context.Context, b *domain.Booking) error
	UpdateNoConflict(ctx context.Context, b *domain.Booking) error
	ByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, to domain.BookingStatus) (*domain.Booking, error)
	List(ctx context.Context, page, size int32, userID, roomID string) ([]domain.Booking, int64, error)
}

type availability interface {
	IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error)
}

type pricer interface {
	Quote(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int64, error)
}

type publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// BookingSvc drives the booking lifecycle: Pending → Confirmed → Completed,
// with Cancelled reachable from either non-terminal state.
type BookingSvc struct {
	repo  bookingStore
	avail availability
	price pricer
	pub   publisher
}

func NewBookingSvc(repo bookingStore, avail availability, price pricer, pub publisher) *BookingSvc {
	return &BookingSvc{repo: repo, avail: avail, price: price, pub: pub}
}

func parseDateUTC(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidRange
	}
	return t.UTC(), nil
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Create books a room for [checkIn, checkOut) as Pending with the total
// priced at the current nightly rate.
func (s *BookingSvc) Create(ctx context.Context, userID, roomID, checkIn, checkOut string) (*domain.Booking, error) {
	in, err := parseDateUTC(checkIn)
	if err != nil {
		return nil, err
	}
	out, err := parseDateUTC(checkOut)
	if err != nil {
		return nil, err
	}
	if !out.After(in) || in.Before(todayUTC()) {
		return nil, domain.ErrInvalidRange
	}

	ok, err := s.avail.IsAvailable(ctx, roomID, in, out, "")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrRoomUnavailable
	}

	total, err := s.price.Quote(ctx, roomID, in, out)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		UserID:   userID,
		RoomID:   roomID,
		CheckIn:  in,
		CheckOut: out,
		Total:    total,
		Status:   domain.BookingPending,
	}
	if err := s.repo.CreateNoConflict(ctx, b); err != nil {
		return nil, err
	}

	_ = s.pub.PublishJSON(ctx, "booking.created", map[string]any{
		"booking_id": b.ID, "user_id": b.UserID, "room_id": b.RoomID,
		"check_in": b.CheckIn.Format(dateLayout), "check_out": b.CheckOut.Format(dateLayout),
		"total": b.Total,
	})
	return b, nil
}

// Update changes the stay dates and optionally overrides the status. Date
// changes re-check availability against sibling bookings only and re-price
// the stay. A status override must belong to the closed vocabulary.
func (s *BookingSvc) Update(ctx context.Context, bookingID, checkIn, checkOut, status string) (*domain.Booking, error) {
	b, err := s.repo.ByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	in, err := parseDateUTC(checkIn)
	if err != nil {
		return nil, err
	}
	out, err := parseDateUTC(checkOut)
	if err != nil {
		return nil, err
	}
	if !out.After(in) {
		return nil, domain.ErrInvalidRange
	}

	if status != "" {
		st := domain.BookingStatus(status)
		if !st.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		if b.Status.Terminal() && st != b.Status {
			return nil, domain.ErrTerminalStatus
		}
		b.Status = st
	}

	if !in.Equal(b.CheckIn) || !out.Equal(b.CheckOut) {
		ok, err := s.avail.IsAvailable(ctx, b.RoomID, in, out, b.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrRoomUnavailable
		}
		total, err := s.price.Quote(ctx, b.RoomID, in, out)
		if err != nil {
			return nil, err
		}
		b.CheckIn, b.CheckOut, b.Total = in, out, total
	}

	if err := s.repo.UpdateNoConflict(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func guestCancelError(b *domain.Booking, userID string) error {
	if b.UserID != userID {
		return domain.ErrForbidden
	}
	if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
		return domain.ErrNotCancelable
	}
	if b.CheckIn.Sub(time.Now().UTC()) < cancelWindow {
		return domain.ErrNotCancelable
	}
	return nil
}

// Cancel sets the booking to Cancelled. Guests may only cancel their own
// Pending or Confirmed booking at least 24h before check-in; admins may
// cancel any non-terminal booking.
func (s *BookingSvc) Cancel(ctx context.Context, bookingID, requesterID string, isAdmin bool) (*domain.Booking, error) {
	b, err := s.repo.ByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if isAdmin {
		if b.Status.Terminal() {
			return nil, domain.ErrNotCancelable
		}
	} else if err := guestCancelError(b, requesterID); err != nil {
		return nil, err
	}

	b, err = s.repo.UpdateStatus(ctx, bookingID, domain.BookingCancelled)
	if err != nil {
		return nil, err
	}
	_ = s.pub.PublishJSON(ctx, "booking.cancelled", map[string]any{"booking_id": b.ID})
	return b, nil
}

// CanCancel mirrors the guest-side cancellation rule without side effects,
// for presentation layers to decide whether to offer the action.
func (s *BookingSvc) CanCancel(ctx context.Context, bookingID, userID string) (bool, error) {
	b, err := s.repo.ByID(ctx, bookingID)
	if err != nil {
		return false, err
	}
	return guestCancelError(b, userID) == nil, nil
}

// SetStatus is the admin transition: confirm, complete or cancel. Terminal
// bookings are immutable.
func (s *BookingSvc) SetStatus(ctx context.Context, bookingID, status string) (*domain.Booking, error) {
	st := domain.BookingStatus(status)
	if !st.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	b, err := s.repo.ByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status.Terminal() {
		return nil, domain.ErrTerminalStatus
	}

	b, err = s.repo.UpdateStatus(ctx, bookingID, st)
	if err != nil {
		return nil, err
	}
	switch st {
	case domain.BookingConfirmed:
		_ = s.pub.PublishJSON(ctx, "booking.confirmed", map[string]any{"booking_id": b.ID})
	case domain.BookingCompleted:
		_ = s.pub.PublishJSON(ctx, "booking.completed", map[string]any{"booking_id": b.ID})
	case domain.BookingCancelled:
		_ = s.pub.PublishJSON(ctx, "booking.cancelled", map[string]any{"booking_id": b.ID})
	}
	return b, nil
}

func (s *BookingSvc) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.ByID(ctx, id)
}

func (s *BookingSvc) List(ctx context.Context, page, size int32, userID, roomID string) ([]domain.Booking, int64, error) {
	return s.repo.List(ctx, page, size, userID, roomID)
}
