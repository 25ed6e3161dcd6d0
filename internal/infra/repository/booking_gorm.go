package repository

import (
	"context"

	"gorm.io/gorm"

	booking "github.com/BruksfildServices01/spa-booking/internal/domain/booking"
	"github.com/BruksfildServices01/spa-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Save(
	ctx context.Context,
	rec *models.BookingRecord,
) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *BookingGormRepository) GetForOwner(
	ctx context.Context,
	bookingID string,
	ownerKey string,
) (*models.BookingRecord, error) {

	var rec models.BookingRecord
	if err := r.db.WithContext(ctx).
		Where("booking_id = ? AND owner_key = ?", bookingID, ownerKey).
		First(&rec).Error; err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	rec *models.BookingRecord,
) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Compile-time check
var _ booking.Records = (*BookingGormRepository)(nil)
