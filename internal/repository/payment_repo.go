package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
)

type PaymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Payment{})
}

// AppendWithinBalance appends p inside a transaction that locks the booking
// row, so the balance check and the insert are observed as one unit. It
// rejects amounts above the remaining balance and flips the booking to
// Confirmed once cumulative payments reach the total. The returned bool
// reports whether that transition happened in this call.
func (r *PaymentRepo) AppendWithinBalance(ctx context.Context, p *domain.Payment) (bool, error) {
	confirmed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, "id = ?", p.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		paid, err := sumPayments(tx, p.BookingID)
		if err != nil {
			return err
		}
		if p.Amount > b.Total-paid {
			return domain.ErrOverPayment
		}

		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		// Confirmation is one-directional: only Pending flips, and later
		// refunds never revert it.
		if paid+p.Amount >= b.Total && b.Status == domain.BookingPending {
			b.Status = domain.BookingConfirmed
			if err := tx.Save(&b).Error; err != nil {
				return err
			}
			confirmed = true
		}
		return nil
	})
	return confirmed, err
}

// Create appends a ledger entry without a balance check. Used for
// compensating refund entries.
func (r *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepo) ByID(ctx context.Context, id string) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) ListByBooking(ctx context.Context, bookingID string) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

// SumByBooking totals all entries, positive and negative, for the booking.
func (r *PaymentRepo) SumByBooking(ctx context.Context, bookingID string) (int64, error) {
	return sumPayments(r.db.WithContext(ctx), bookingID)
}

func sumPayments(tx *gorm.DB, bookingID string) (int64, error) {
	var paid int64
	err := tx.Model(&domain.Payment{}).
		Where("booking_id = ?", bookingID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paid).Error
	return paid, err
}
