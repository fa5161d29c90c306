package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrDateInPast        = errors.New("date cannot be in the past")
)

type AvailabilityUsecase interface {
	GetAvailability(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	log                 *logrus.Logger
	doctorRepo          repository.DoctorRepository
	availabilityService service.AvailabilityService
	now                 func() time.Time
}

func NewAvailabilityUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	availabilityService service.AvailabilityService,
	loc *time.Location,
) AvailabilityUsecase {
	return &availabilityUsecase{
		log:                 log,
		doctorRepo:          doctorRepo,
		availabilityService: availabilityService,
		now:                 clinicClock(loc),
	}
}

// GetAvailability lists the open slots of a doctor on date. Fetch failures
// inside the calculation yield an empty list, never an error.
func (u *availabilityUsecase) GetAvailability(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	day, err := bookableDate(date, u.now())
	if err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	slots := u.availabilityService.AvailableSlots(ctx, doctorID, day)

	return &dto.AvailabilityResponse{
		DoctorID:  doctorID,
		Date:      day.Format(entity.DateLayout),
		DayOfWeek: int(day.Weekday()),
		Slots:     converter.TimeSlotsToResponses(slots),
	}, nil
}

// clinicClock reads the current time in the clinic's location, so "today"
// follows the clinic's calendar rather than UTC.
func clinicClock(loc *time.Location) func() time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time { return time.Now().In(loc) }
}

// bookableDate parses a YYYY-MM-DD date and rejects days before today.
func bookableDate(date string, now time.Time) (time.Time, error) {
	day, err := entity.ParseDate(date)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	if day.Before(entity.StartOfDay(now)) {
		return time.Time{}, ErrDateInPast
	}
	return day, nil
}
