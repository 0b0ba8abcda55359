package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
)

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Booking{})
}

// HasOverlap reports whether any non-cancelled booking on the room overlaps
// [checkIn, checkOut). Two half-open ranges overlap iff a < d AND c < b, so
// back-to-back stays (checkout day == checkin day) do not collide.
// excludeID skips one booking, used when re-checking an edit against itself.
func (r *BookingRepo) HasOverlap(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	qb := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("room_id = ? AND status <> ?", roomID, domain.BookingCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID != "" {
		qb = qb.Where("id <> ?", excludeID)
	}
	var n int64
	if err := qb.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateNoConflict inserts b inside a transaction that locks any candidate
// overlapping rows, so two concurrent creates for the same room cannot both
// pass the availability check before either commits.
func (r *BookingRepo) CreateNoConflict(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Booking
		err := tx.Model(&domain.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ? AND status <> ?", b.RoomID, domain.BookingCancelled).
			Where("check_in < ? AND check_out > ?", b.CheckOut, b.CheckIn).
			Take(&existing).Error
		if err == nil {
			return domain.ErrRoomUnavailable
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		return tx.Create(b).Error
	})
}

// UpdateNoConflict saves b under the same locked overlap re-check as
// CreateNoConflict, ignoring b's own row.
func (r *BookingRepo) UpdateNoConflict(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Booking
		err := tx.Model(&domain.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ? AND status <> ? AND id <> ?", b.RoomID, domain.BookingCancelled, b.ID).
			Where("check_in < ? AND check_out > ?", b.CheckOut, b.CheckIn).
			Take(&existing).Error
		if err == nil {
			return domain.ErrRoomUnavailable
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Save(b).Error
	})
}

func (r *BookingRepo) ByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id string, to domain.BookingStatus) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		b.Status = to
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) List(ctx context.Context, page, size int32, userID, roomID string) ([]domain.Booking, int64, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Booking{})
	if userID != "" {
		qb = qb.Where("user_id = ?", userID)
	}
	if roomID != "" {
		qb = qb.Where("room_id = ?", roomID)
	}
	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Booking
	if err := qb.Order("check_in ASC").Limit(int(size)).Offset(int(page * size)).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
