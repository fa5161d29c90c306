package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type timeSlotRepository struct {
	db *gorm.DB
}

func NewTimeSlotRepository(db *gorm.DB) domainRepo.TimeSlotRepository {
	return &timeSlotRepository{db: db}
}

func (r *timeSlotRepository) Create(ctx context.Context, slot *entity.TimeSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *timeSlotRepository) FindByID(ctx context.Context, id int) (*entity.TimeSlot, error) {
	var slot entity.TimeSlot
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) FindAll(ctx context.Context, activeOnly bool) ([]entity.TimeSlot, error) {
	var slots []entity.TimeSlot
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("slot_time ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *timeSlotRepository) SetActive(ctx context.Context, id int, active bool) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.TimeSlot{}).Where("id = ?", id).Update("is_active", active)
	return result.RowsAffected, result.Error
}
