package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.DoctorSchedule) error
	FindByID(ctx context.Context, id int) (*entity.DoctorSchedule, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorSchedule, error)
	FindByDoctorAndDay(ctx context.Context, doctorID uuid.UUID, day int) (*entity.DoctorSchedule, error)
	Update(ctx context.Context, schedule *entity.DoctorSchedule) error
	Delete(ctx context.Context, id int) (int64, error)
}
