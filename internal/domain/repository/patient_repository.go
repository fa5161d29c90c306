package repository

import (
	"context"

	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindWithBookings(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	// FindByPhoneAndName matches an exact stored phone and a case-insensitive name.
	FindByPhoneAndName(ctx context.Context, phone, name string) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	Count(ctx context.Context) (int64, error)
}
