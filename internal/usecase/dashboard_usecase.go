package usecase

import (
	"context"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type dashboardUsecase struct {
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
	bookingRepo repository.BookingRepository
	messageRepo repository.ContactMessageRepository
}

func NewDashboardUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	bookingRepo repository.BookingRepository,
	messageRepo repository.ContactMessageRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:         log,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		bookingRepo: bookingRepo,
		messageRepo: messageRepo,
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	doctors, err := u.doctorRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	patients, err := u.patientRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	byStatus, err := u.bookingRepo.CountByStatus(ctx)
	if err != nil {
		u.log.Warnf("Failed to count bookings: %+v", err)
		return nil, err
	}

	messages, unread, err := u.messageRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count messages: %+v", err)
		return nil, err
	}

	var totalBookings int64
	for _, n := range byStatus {
		totalBookings += n
	}

	return &dto.StatsResponse{
		TotalDoctors:      doctors,
		TotalPatients:     patients,
		TotalBookings:     totalBookings,
		PendingBookings:   byStatus[entity.BookingStatusPending],
		ConfirmedBookings: byStatus[entity.BookingStatusConfirmed],
		CompletedBookings: byStatus[entity.BookingStatusCompleted],
		CancelledBookings: byStatus[entity.BookingStatusCancelled],
		TotalMessages:     messages,
		UnreadMessages:    unread,
	}, nil
}
