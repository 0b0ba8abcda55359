package service

import (
	"context"
	"fmt"
	"time"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
)

// In-memory stands-ins for the repositories, mirroring their contract:
// domain.ErrNotFound for absent rows, domain.ErrRoomUnavailable from the
// conflict-checked writes, domain.ErrOverPayment from the ledger append.

type fakeRoomStore struct {
	rooms map[string]*domain.Room
	rates map[string]int64
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: map[string]*domain.Room{}, rates: map[string]int64{}}
}

func (f *fakeRoomStore) addRoom(id string, status domain.RoomStatus, rate int64) {
	f.rooms[id] = &domain.Room{ID: id, RoomTypeID: "rt-" + id, RoomNumber: id, Status: status}
	f.rates[id] = rate
}

func (f *fakeRoomStore) ByID(_ context.Context, id string) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (f *fakeRoomStore) RateForRoom(_ context.Context, roomID string) (int64, error) {
	rate, ok := f.rates[roomID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return rate, nil
}

type fakeBookingStore struct {
	bookings map[string]*domain.Booking
	seq      int
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[string]*domain.Booking{}}
}

func (f *fakeBookingStore) overlaps(roomID string, in, out time.Time, excludeID string) bool {
	for _, b := range f.bookings {
		if b.RoomID != roomID || b.ID == excludeID || b.Status == domain.BookingCancelled {
			continue
		}
		if b.CheckIn.Before(out) && in.Before(b.CheckOut) {
			return true
		}
	}
	return false
}

func (f *fakeBookingStore) HasOverlap(_ context.Context, roomID string, in, out time.Time, excludeID string) (bool, error) {
	return f.overlaps(roomID, in, out, excludeID), nil
}

func (f *fakeBookingStore) CreateNoConflict(_ context.Context, b *domain.Booking) error {
	if f.overlaps(b.RoomID, b.CheckIn, b.CheckOut, "") {
		return domain.ErrRoomUnavailable
	}
	f.seq++
	b.ID = fmt.Sprintf("b-%d", f.seq)
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingStore) UpdateNoConflict(_ context.Context, b *domain.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return domain.ErrNotFound
	}
	if f.overlaps(b.RoomID, b.CheckIn, b.CheckOut, b.ID) {
		return domain.ErrRoomUnavailable
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingStore) ByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingStore) UpdateStatus(_ context.Context, id string, to domain.BookingStatus) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b.Status = to
	cp := *b
	return &cp, nil
}

func (f *fakeBookingStore) List(_ context.Context, page, size int32, userID, roomID string) ([]domain.Booking, int64, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if userID != "" && b.UserID != userID {
			continue
		}
		if roomID != "" && b.RoomID != roomID {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

type fakePaymentStore struct {
	payments []*domain.Payment
	bookings *fakeBookingStore
	seq      int
}

func newFakePaymentStore(bookings *fakeBookingStore) *fakePaymentStore {
	return &fakePaymentStore{bookings: bookings}
}

func (f *fakePaymentStore) sum(bookingID string) int64 {
	var total int64
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			total += p.Amount
		}
	}
	return total
}

func (f *fakePaymentStore) append(p *domain.Payment) {
	f.seq++
	p.ID = fmt.Sprintf("p-%d", f.seq)
	p.CreatedAt = time.Now().UTC()
	cp := *p
	f.payments = append(f.payments, &cp)
}

func (f *fakePaymentStore) AppendWithinBalance(_ context.Context, p *domain.Payment) (bool, error) {
	b, ok := f.bookings.bookings[p.BookingID]
	if !ok {
		return false, domain.ErrNotFound
	}
	paid := f.sum(p.BookingID)
	if p.Amount > b.Total-paid {
		return false, domain.ErrOverPayment
	}
	f.append(p)
	if paid+p.Amount >= b.Total && b.Status == domain.BookingPending {
		b.Status = domain.BookingConfirmed
		return true, nil
	}
	return false, nil
}

func (f *fakePaymentStore) Create(_ context.Context, p *domain.Payment) error {
	f.append(p)
	return nil
}

func (f *fakePaymentStore) ByID(_ context.Context, id string) (*domain.Payment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePaymentStore) ListByBooking(_ context.Context, bookingID string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentStore) SumByBooking(_ context.Context, bookingID string) (int64, error) {
	return f.sum(bookingID), nil
}

type fakePublisher struct {
	keys []string
}

func (f *fakePublisher) PublishJSON(_ context.Context, key string, _ any) error {
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakePublisher) published(key string) int {
	n := 0
	for _, k := range f.keys {
		if k == key {
			n++
		}
	}
	return n
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}
