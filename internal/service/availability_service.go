package service

import (
	"context"
	"time"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AvailabilityService resolves the bookable slots of a doctor on a date.
// It fails closed: any fetch error is logged and yields no slots.
type AvailabilityService interface {
	AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) []entity.TimeSlot
}

type availabilityService struct {
	log          *logrus.Logger
	scheduleRepo repository.DoctorScheduleRepository
	timeSlotRepo repository.TimeSlotRepository
	bookingRepo  repository.BookingRepository
}

func NewAvailabilityService(
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	timeSlotRepo repository.TimeSlotRepository,
	bookingRepo repository.BookingRepository,
) AvailabilityService {
	return &availabilityService{
		log:          log,
		scheduleRepo: scheduleRepo,
		timeSlotRepo: timeSlotRepo,
		bookingRepo:  bookingRepo,
	}
}

func (s *availabilityService) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) []entity.TimeSlot {
	none := []entity.TimeSlot{}

	schedule, err := s.scheduleRepo.FindByDoctorAndDay(ctx, doctorID, int(date.Weekday()))
	if err != nil {
		s.log.Warnf("Failed to fetch schedule for doctor %s on %s: %+v", doctorID, date.Format(entity.DateLayout), err)
		return none
	}
	if schedule == nil || !schedule.IsActive {
		return none
	}

	catalog, err := s.timeSlotRepo.FindAll(ctx, true)
	if err != nil {
		s.log.Warnf("Failed to fetch time slot catalog: %+v", err)
		return none
	}

	booked, err := s.bookingRepo.FindBookedTimes(ctx, doctorID, date)
	if err != nil {
		s.log.Warnf("Failed to fetch booked times for doctor %s on %s: %+v", doctorID, date.Format(entity.DateLayout), err)
		return none
	}

	return entity.AvailableSlots(schedule, catalog, booked)
}
