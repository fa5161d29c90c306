package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_GetStats(t *testing.T) {
	doctorRepo := new(mocks.DoctorRepository)
	patientRepo := new(mocks.PatientRepository)
	bookingRepo := new(mocks.BookingRepository)
	messageRepo := new(mocks.ContactMessageRepository)
	uc := NewDashboardUsecase(quietLogger(), doctorRepo, patientRepo, bookingRepo, messageRepo)
	ctx := context.Background()

	doctorRepo.On("Count", ctx).Return(int64(4), nil)
	patientRepo.On("Count", ctx).Return(int64(20), nil)
	bookingRepo.On("CountByStatus", ctx).Return(map[entity.BookingStatus]int64{
		entity.BookingStatusPending:   3,
		entity.BookingStatusConfirmed: 5,
		entity.BookingStatusCancelled: 2,
	}, nil)
	messageRepo.On("Count", ctx).Return(int64(7), int64(1), nil)

	stats, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalDoctors)
	assert.Equal(t, int64(20), stats.TotalPatients)
	assert.Equal(t, int64(10), stats.TotalBookings)
	assert.Equal(t, int64(3), stats.PendingBookings)
	assert.Equal(t, int64(0), stats.CompletedBookings)
	assert.Equal(t, int64(2), stats.CancelledBookings)
	assert.Equal(t, int64(1), stats.UnreadMessages)
}

func TestDashboard_GetStatsPropagatesErrors(t *testing.T) {
	doctorRepo := new(mocks.DoctorRepository)
	uc := NewDashboardUsecase(quietLogger(), doctorRepo, new(mocks.PatientRepository), new(mocks.BookingRepository), new(mocks.ContactMessageRepository))
	ctx := context.Background()
	doctorRepo.On("Count", ctx).Return(int64(0), errors.New("connection reset"))

	_, err := uc.GetStats(ctx)
	assert.Error(t, err)
}
