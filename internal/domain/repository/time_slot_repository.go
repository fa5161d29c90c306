package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"
)

type TimeSlotRepository interface {
	Create(ctx context.Context, slot *entity.TimeSlot) error
	FindByID(ctx context.Context, id int) (*entity.TimeSlot, error)
	// FindAll returns the catalog ascending by slot time.
	FindAll(ctx context.Context, activeOnly bool) ([]entity.TimeSlot, error)
	SetActive(ctx context.Context, id int, active bool) (int64, error)
}
