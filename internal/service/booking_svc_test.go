package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
)

func newBookingEnv(t *testing.T) (*BookingSvc, *fakeBookingStore, *fakeRoomStore, *fakePublisher) {
	t.Helper()
	rooms := newFakeRoomStore()
	rooms.addRoom("r1", domain.RoomAvailable, 400_000)
	rooms.addRoom("closed", domain.RoomOutOfService, 400_000)
	bookings := newFakeBookingStore()
	pub := &fakePublisher{}
	svc := NewBookingSvc(bookings, NewAvailabilityChecker(rooms, bookings), NewPricingCalculator(rooms), pub)
	return svc, bookings, rooms, pub
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(dateLayout)
}

func TestCreateBooking(t *testing.T) {
	svc, _, _, pub := newBookingEnv(t)

	b, err := svc.Create(context.Background(), "u1", "r1", futureDate(2), futureDate(4))
	if err != nil {
		t.Fatal(err)
	}
	if b.Status != domain.BookingPending {
		t.Fatalf("status = %s, want Pending", b.Status)
	}
	if b.Total != 800_000 {
		t.Fatalf("total = %d, want 800000 (2 nights x 400000)", b.Total)
	}
	if b.ID == "" || b.UserID != "u1" {
		t.Fatalf("unexpected booking %+v", b)
	}
	if pub.published("booking.created") != 1 {
		t.Fatalf("booking.created published %d times", pub.published("booking.created"))
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _, _ := newBookingEnv(t)

	cases := []struct {
		name    string
		in, out string
		want    error
	}{
		{"checkout equals checkin", futureDate(2), futureDate(2), domain.ErrInvalidRange},
		{"checkout before checkin", futureDate(4), futureDate(2), domain.ErrInvalidRange},
		{"checkin in the past", futureDate(-1), futureDate(2), domain.ErrInvalidRange},
		{"garbage checkin", "soon", futureDate(2), domain.ErrInvalidRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), "u1", "r1", tc.in, tc.out); !errors.Is(err, tc.want) {
				t.Fatalf("got err %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := svc.Create(context.Background(), "u1", "ghost", futureDate(2), futureDate(4)); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown room: got %v, want ErrNotFound", err)
	}
	if _, err := svc.Create(context.Background(), "u1", "closed", futureDate(2), futureDate(4)); !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("out-of-service room: got %v, want ErrRoomUnavailable", err)
	}
}

func TestCreateBookingAdjacencyAllowed(t *testing.T) {
	svc, _, _, _ := newBookingEnv(t)

	if _, err := svc.Create(context.Background(), "u1", "r1", futureDate(2), futureDate(6)); err != nil {
		t.Fatal(err)
	}
	// back-to-back: checkin on the other guest's checkout day
	if _, err := svc.Create(context.Background(), "u2", "r1", futureDate(6), futureDate(9)); err != nil {
		t.Fatalf("adjacent stay rejected: %v", err)
	}
	// a genuine overlap is refused
	if _, err := svc.Create(context.Background(), "u3", "r1", futureDate(5), futureDate(7)); !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("overlapping stay: got %v, want ErrRoomUnavailable", err)
	}
}

func TestUpdateBooking(t *testing.T) {
	svc, store, _, _ := newBookingEnv(t)

	b, err := svc.Create(context.Background(), "u1", "r1", futureDate(2), futureDate(4))
	if err != nil {
		t.Fatal(err)
	}
	blocker, err := svc.Create(context.Background(), "u2", "r1", futureDate(10), futureDate(12))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Update(context.Background(), "ghost", futureDate(2), futureDate(4), ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("absent booking: got %v, want ErrNotFound", err)
	}
	if _, err := svc.Update(context.Background(), b.ID, futureDate(4), futureDate(4), ""); !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("empty range: got %v, want ErrInvalidRange", err)
	}
	if _, err := svc.Update(context.Background(), b.ID, futureDate(11), futureDate(13), ""); !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("conflicting move: got %v, want ErrRoomUnavailable", err)
	}

	// moving onto its own former range re-prices and succeeds
	got, err := svc.Update(context.Background(), b.ID, futureDate(3), futureDate(6), "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Total != 1_200_000 {
		t.Fatalf("re-priced total = %d, want 1200000 (3 nights)", got.Total)
	}

	if _, err := svc.Update(context.Background(), b.ID, futureDate(3), futureDate(6), "Paid"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("status outside vocabulary: got %v, want ErrInvalidStatus", err)
	}
	got, err = svc.Update(context.Background(), b.ID, futureDate(3), futureDate(6), string(domain.BookingConfirmed))
	if err != nil || got.Status != domain.BookingConfirmed {
		t.Fatalf("status override: got (%+v, %v)", got, err)
	}

	// terminal bookings cannot be re-labelled
	store.bookings[blocker.ID].Status = domain.BookingCompleted
	if _, err := svc.Update(context.Background(), blocker.ID, futureDate(10), futureDate(12), string(domain.BookingPending)); !errors.Is(err, domain.ErrTerminalStatus) {
		t.Fatalf("terminal override: got %v, want ErrTerminalStatus", err)
	}
}

func TestCancelBooking(t *testing.T) {
	svc, store, _, pub := newBookingEnv(t)

	far, err := svc.Create(context.Background(), "u1", "r1", futureDate(5), futureDate(7))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Cancel(context.Background(), far.ID, "intruder", false); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign guest: got %v, want ErrForbidden", err)
	}

	got, err := svc.Cancel(context.Background(), far.ID, "u1", false)
	if err != nil || got.Status != domain.BookingCancelled {
		t.Fatalf("own cancel: got (%+v, %v)", got, err)
	}
	if pub.published("booking.cancelled") != 1 {
		t.Fatal("booking.cancelled not published")
	}

	// check-in two hours away: the guest is inside the 24h window
	soon := &domain.Booking{
		ID: "b-soon", UserID: "u1", RoomID: "r1",
		CheckIn:  time.Now().UTC().Add(2 * time.Hour),
		CheckOut: time.Now().UTC().Add(26 * time.Hour),
		Status:   domain.BookingPending,
	}
	store.bookings[soon.ID] = soon

	if _, err := svc.Cancel(context.Background(), soon.ID, "u1", false); !errors.Is(err, domain.ErrNotCancelable) {
		t.Fatalf("inside window: got %v, want ErrNotCancelable", err)
	}
	// the admin is not bound by the window
	got, err = svc.Cancel(context.Background(), soon.ID, "admin", true)
	if err != nil || got.Status != domain.BookingCancelled {
		t.Fatalf("admin cancel: got (%+v, %v)", got, err)
	}
	// but even the admin cannot cancel twice
	if _, err := svc.Cancel(context.Background(), soon.ID, "admin", true); !errors.Is(err, domain.ErrNotCancelable) {
		t.Fatalf("terminal cancel: got %v, want ErrNotCancelable", err)
	}
}

func TestCanCancel(t *testing.T) {
	svc, store, _, _ := newBookingEnv(t)

	far, err := svc.Create(context.Background(), "u1", "r1", futureDate(5), futureDate(7))
	if err != nil {
		t.Fatal(err)
	}

	if can, err := svc.CanCancel(context.Background(), far.ID, "u1"); err != nil || !can {
		t.Fatalf("own future booking: got (%v, %v), want (true, nil)", can, err)
	}
	if can, _ := svc.CanCancel(context.Background(), far.ID, "intruder"); can {
		t.Fatal("foreign guest should not be offered cancellation")
	}
	store.bookings[far.ID].Status = domain.BookingCompleted
	if can, _ := svc.CanCancel(context.Background(), far.ID, "u1"); can {
		t.Fatal("completed booking should not be cancelable")
	}
	if _, err := svc.CanCancel(context.Background(), "ghost", "u1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("absent booking: got %v, want ErrNotFound", err)
	}
}

func TestSetStatus(t *testing.T) {
	svc, _, _, pub := newBookingEnv(t)

	b, err := svc.Create(context.Background(), "u1", "r1", futureDate(5), futureDate(7))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.SetStatus(context.Background(), b.ID, "Archived"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("bad vocabulary: got %v, want ErrInvalidStatus", err)
	}

	got, err := svc.SetStatus(context.Background(), b.ID, string(domain.BookingConfirmed))
	if err != nil || got.Status != domain.BookingConfirmed {
		t.Fatalf("confirm: got (%+v, %v)", got, err)
	}
	if pub.published("booking.confirmed") != 1 {
		t.Fatal("booking.confirmed not published")
	}

	got, err = svc.SetStatus(context.Background(), b.ID, string(domain.BookingCompleted))
	if err != nil || got.Status != domain.BookingCompleted {
		t.Fatalf("complete: got (%+v, %v)", got, err)
	}
	if _, err := svc.SetStatus(context.Background(), b.ID, string(domain.BookingPending)); !errors.Is(err, domain.ErrTerminalStatus) {
		t.Fatalf("out of terminal: got %v, want ErrTerminalStatus", err)
	}
}
