package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
)

type RoomRepo struct{ db *gorm.DB }

func NewRoomRepo(db *gorm.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

func (r *RoomRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Hotel{}, &domain.RoomType{}, &domain.Room{})
}

func (r *RoomRepo) Create(ctx context.Context, room *domain.Room) error {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	if room.Status == "" {
		room.Status = domain.RoomAvailable
	}
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepo) ByID(ctx context.Context, id string) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// RateForRoom resolves the nightly rate through the room's type.
func (r *RoomRepo) RateForRoom(ctx context.Context, roomID string) (int64, error) {
	room, err := r.ByID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	var rt domain.RoomType
	if err := r.db.WithContext(ctx).First(&rt, "id = ?", room.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return rt.NightlyRate, nil
}

func (r *RoomRepo) List(ctx context.Context, page, size int32, status string) ([]domain.Room, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Room{})
	if status != "" {
		qb = qb.Where("status = ?", status)
	}
	var out []domain.Room
	if err := qb.Order("room_number ASC").Limit(int(size)).Offset(int(page * size)).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RoomRepo) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Model(&domain.Room{}).Where("id = ?", room.ID).Updates(room).Error
}

func (r *RoomRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Room{}, "id = ?", id).Error
}

func (r *RoomRepo) CreateHotel(ctx context.Context, h *domain.Hotel) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *RoomRepo) CreateRoomType(ctx context.Context, rt *domain.RoomType) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *RoomRepo) RoomTypeByID(ctx context.Context, id string) (*domain.RoomType, error) {
	var rt domain.RoomType
	if err := r.db.WithContext(ctx).First(&rt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rt, nil
}
