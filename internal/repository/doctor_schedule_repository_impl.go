package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorScheduleRepository struct {
	db *gorm.DB
}

func NewDoctorScheduleRepository(db *gorm.DB) domainRepo.DoctorScheduleRepository {
	return &doctorScheduleRepository{db: db}
}

func (r *doctorScheduleRepository) Create(ctx context.Context, schedule *entity.DoctorSchedule) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(schedule).Error
}

func (r *doctorScheduleRepository) FindByID(ctx context.Context, id int) (*entity.DoctorSchedule, error) {
	var schedule entity.DoctorSchedule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *doctorScheduleRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorSchedule, error) {
	var schedules []entity.DoctorSchedule
	err := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID).Order("day_of_week ASC").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// FindByDoctorAndDay returns the schedule row for the weekday whether or not it is active.
func (r *doctorScheduleRepository) FindByDoctorAndDay(ctx context.Context, doctorID uuid.UUID, day int) (*entity.DoctorSchedule, error) {
	var schedule entity.DoctorSchedule
	err := r.db.WithContext(ctx).Where("doctor_id = ? AND day_of_week = ?", doctorID, day).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *doctorScheduleRepository) Update(ctx context.Context, schedule *entity.DoctorSchedule) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(schedule).Error
}

func (r *doctorScheduleRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DoctorSchedule{})
	return result.RowsAffected, result.Error
}
