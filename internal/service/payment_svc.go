package service

import (
	"context"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
)

type paymentStore interface {
	AppendWithinBalance(ctx context.Context, p *domain.Payment) (bool, error)
	Create(ctx context.Context, p *domain.Payment) error
	ByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByBooking(ctx context.Context, bookingID string) ([]domain.Payment, error)
	SumByBooking(ctx context.Context, bookingID string) (int64, error)
}

type bookingReader interface {
	ByID(ctx context.Context, id string) (*domain.Booking, error)
}

// PaymentSvc is the append-only payment ledger. Entries are never updated
// or deleted; refunds are compensating negative entries.
type PaymentSvc struct {
	payments paymentStore
	bookings bookingReader
	pub      publisher
}

func NewPaymentSvc(payments paymentStore, bookings bookingReader, pub publisher) *PaymentSvc {
	return &PaymentSvc{payments: payments, bookings: bookings, pub: pub}
}

// Record appends a payment. The amount must be positive and no larger than
// the remaining balance; reaching the total confirms a Pending booking.
func (s *PaymentSvc) Record(ctx context.Context, bookingID string, amount int64, method string) (*domain.Payment, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	m := domain.PaymentMethod(method)
	if !m.Valid() {
		return nil, domain.ErrInvalidMethod
	}

	p := &domain.Payment{BookingID: bookingID, Amount: amount, Method: m}
	confirmed, err := s.payments.AppendWithinBalance(ctx, p)
	if err != nil {
		return nil, err
	}

	_ = s.pub.PublishJSON(ctx, "payment.recorded", map[string]any{
		"payment_id": p.ID, "booking_id": p.BookingID, "amount": p.Amount, "method": string(p.Method),
	})
	if confirmed {
		_ = s.pub.PublishJSON(ctx, "booking.confirmed", map[string]any{"booking_id": p.BookingID})
	}
	return p, nil
}

// Refund appends a compensating entry for an earlier payment. The original
// row is untouched and the booking status is not reverted; undoing a
// confirmation is a separate admin decision.
func (s *PaymentSvc) Refund(ctx context.Context, paymentID string) (*domain.Payment, error) {
	orig, err := s.payments.ByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if orig.Amount <= 0 {
		// Refunding a refund would re-charge the guest.
		return nil, domain.ErrInvalidAmount
	}

	comp := &domain.Payment{
		BookingID: orig.BookingID,
		Amount:    -orig.Amount,
		Method:    orig.Method,
	}
	if err := s.payments.Create(ctx, comp); err != nil {
		return nil, err
	}

	_ = s.pub.PublishJSON(ctx, "payment.refunded", map[string]any{
		"payment_id": comp.ID, "original_id": orig.ID, "booking_id": comp.BookingID, "amount": comp.Amount,
	})
	return comp, nil
}

// TotalPaid sums every ledger entry for the booking.
func (s *PaymentSvc) TotalPaid(ctx context.Context, bookingID string) (int64, error) {
	if _, err := s.bookings.ByID(ctx, bookingID); err != nil {
		return 0, err
	}
	return s.payments.SumByBooking(ctx, bookingID)
}

// Ledger returns the booking's entries with its paid and remaining totals.
func (s *PaymentSvc) Ledger(ctx context.Context, bookingID string) ([]domain.Payment, int64, int64, error) {
	b, err := s.bookings.ByID(ctx, bookingID)
	if err != nil {
		return nil, 0, 0, err
	}
	entries, err := s.payments.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, 0, 0, err
	}
	paid, err := s.payments.SumByBooking(ctx, bookingID)
	if err != nil {
		return nil, 0, 0, err
	}
	return entries, paid, b.Total - paid, nil
}
