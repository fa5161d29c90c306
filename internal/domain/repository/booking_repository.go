package repository

import (
	"context"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
)

type BookingRepository interface {
	// CreateWithPatient inserts patient when it has no ID yet, otherwise stores its
	// current email, then inserts booking, all in one transaction.
	CreateWithPatient(ctx context.Context, patient *entity.Patient, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, filter *entity.BookingFilter) ([]entity.Booking, error)
	FindByPatientEmail(ctx context.Context, email string) ([]entity.Booking, error)
	// FindBookedTimes returns the clock times held by non-cancelled bookings.
	FindBookedTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error)
	// UpdateStatus moves a booking from one status to another only if it is still in from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (int64, error)
	// Cancel flips a pending booking to cancelled and archives it in the same transaction.
	Cancel(ctx context.Context, booking *entity.Booking, reason string) (int64, error)
	CountByStatus(ctx context.Context) (map[entity.BookingStatus]int64, error)
}

type CancelledBookingRepository interface {
	FindAll(ctx context.Context) ([]entity.CancelledBooking, error)
	FindByPatientEmail(ctx context.Context, email string) ([]entity.CancelledBooking, error)
}
