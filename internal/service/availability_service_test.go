package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func halfHourCatalog() []entity.TimeSlot {
	times := []string{"09:00:00", "09:30:00", "10:00:00", "10:30:00", "11:00:00", "11:30:00", "12:00:00", "12:30:00"}
	slots := make([]entity.TimeSlot, len(times))
	for i, t := range times {
		slots[i] = entity.TimeSlot{ID: i + 1, SlotTime: t, IsActive: true}
	}
	return slots
}

func newAvailability() (*availabilityService, *mocks.DoctorScheduleRepository, *mocks.TimeSlotRepository, *mocks.BookingRepository) {
	schedules := &mocks.DoctorScheduleRepository{}
	slots := &mocks.TimeSlotRepository{}
	bookings := &mocks.BookingRepository{}
	svc := NewAvailabilityService(quietLogger(), schedules, slots, bookings).(*availabilityService)
	return svc, schedules, slots, bookings
}

func TestAvailableSlots_MondayExample(t *testing.T) {
	svc, schedules, slots, bookings := newAvailability()
	ctx := context.Background()
	doctorID := uuid.New()
	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	schedules.On("FindByDoctorAndDay", ctx, doctorID, 1).Return(&entity.DoctorSchedule{
		DoctorID: doctorID, DayOfWeek: 1, StartTime: "09:00:00", EndTime: "12:00:00", IsActive: true,
	}, nil)
	slots.On("FindAll", ctx, true).Return(halfHourCatalog(), nil)
	bookings.On("FindBookedTimes", ctx, doctorID, monday).Return([]string{"10:00"}, nil)

	got := svc.AvailableSlots(ctx, doctorID, monday)

	var times []string
	for _, s := range got {
		times = append(times, s.SlotTime)
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30", "12:00"}, times)
}

func TestAvailableSlots_TuesdayWithoutSchedule(t *testing.T) {
	svc, schedules, slots, bookings := newAvailability()
	ctx := context.Background()
	doctorID := uuid.New()
	tuesday := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	schedules.On("FindByDoctorAndDay", ctx, doctorID, 2).Return(nil, nil)

	got := svc.AvailableSlots(ctx, doctorID, tuesday)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	slots.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "FindBookedTimes", mock.Anything, mock.Anything, mock.Anything)
}

func TestAvailableSlots_FailsClosedOnFetchErrors(t *testing.T) {
	ctx := context.Background()
	doctorID := uuid.New()
	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	active := &entity.DoctorSchedule{StartTime: "09:00", EndTime: "12:00", IsActive: true}
	boom := errors.New("connection reset")

	t.Run("schedule", func(t *testing.T) {
		svc, schedules, _, _ := newAvailability()
		schedules.On("FindByDoctorAndDay", ctx, doctorID, 1).Return(nil, boom)
		assert.Empty(t, svc.AvailableSlots(ctx, doctorID, monday))
	})

	t.Run("catalog", func(t *testing.T) {
		svc, schedules, slots, _ := newAvailability()
		schedules.On("FindByDoctorAndDay", ctx, doctorID, 1).Return(active, nil)
		slots.On("FindAll", ctx, true).Return(nil, boom)
		assert.Empty(t, svc.AvailableSlots(ctx, doctorID, monday))
	})

	t.Run("booked times", func(t *testing.T) {
		svc, schedules, slots, bookings := newAvailability()
		schedules.On("FindByDoctorAndDay", ctx, doctorID, 1).Return(active, nil)
		slots.On("FindAll", ctx, true).Return(halfHourCatalog(), nil)
		bookings.On("FindBookedTimes", ctx, doctorID, monday).Return(nil, boom)
		assert.Empty(t, svc.AvailableSlots(ctx, doctorID, monday))
	})
}

func TestAvailableSlots_InactiveScheduleRow(t *testing.T) {
	svc, schedules, _, _ := newAvailability()
	ctx := context.Background()
	doctorID := uuid.New()
	sunday := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	schedules.On("FindByDoctorAndDay", ctx, doctorID, 0).Return(&entity.DoctorSchedule{
		StartTime: "09:00", EndTime: "12:00", IsActive: false,
	}, nil)

	assert.Empty(t, svc.AvailableSlots(ctx, doctorID, sunday))
}
