package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/infrastructure/metrics"
	"clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidStatus           = errors.New("invalid booking status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrStatusConflict          = errors.New("booking status changed, reload and retry")
	ErrInvalidDateRange        = errors.New("from date must not be after to date")
)

type AdminBookingUsecase interface {
	GetBookings(ctx context.Context, query *dto.BookingFilterQuery) (*dto.BookingListResponse, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	// UpdateStatus applies one lifecycle step. Cancelling also archives the booking.
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
	GetCancelledBookings(ctx context.Context) (*dto.CancelledBookingListResponse, error)
}

type adminBookingUsecase struct {
	log                 *logrus.Logger
	bookingRepo         repository.BookingRepository
	cancelledRepo       repository.CancelledBookingRepository
	notificationService service.NotificationService
	auditService        service.AuditService
}

func NewAdminBookingUsecase(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	cancelledRepo repository.CancelledBookingRepository,
	notificationService service.NotificationService,
	auditService service.AuditService,
) AdminBookingUsecase {
	return &adminBookingUsecase{
		log:                 log,
		bookingRepo:         bookingRepo,
		cancelledRepo:       cancelledRepo,
		notificationService: notificationService,
		auditService:        auditService,
	}
}

func (u *adminBookingUsecase) GetBookings(ctx context.Context, query *dto.BookingFilterQuery) (*dto.BookingListResponse, error) {
	filter, err := bookingFilter(query)
	if err != nil {
		return nil, err
	}

	bookings, err := u.bookingRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *adminBookingUsecase) GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

// UpdateStatus moves a booking along pending -> confirmed -> completed, or
// pending -> cancelled.
//
// The write is conditional on the status read here, so when two admins act
// at once only one succeeds and the other gets ErrStatusConflict.
func (u *adminBookingUsecase) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	to := entity.BookingStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !to.IsValid() {
		return nil, ErrInvalidStatus
	}

	booking, err := u.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	from := booking.Status
	if !from.CanTransitionTo(to) {
		return nil, ErrInvalidStatusTransition
	}

	reason := strings.TrimSpace(req.Reason)
	action := entity.AuditActionBookingStatus

	var affectedRows int64
	if to == entity.BookingStatusCancelled {
		action = entity.AuditActionBookingCancel
		affectedRows, err = u.bookingRepo.Cancel(ctx, booking, reason)
	} else {
		affectedRows, err = u.bookingRepo.UpdateStatus(ctx, bookingID, from, to)
	}
	if err != nil {
		u.log.Warnf("Failed to update booking %s status %s -> %s: %+v", bookingID, from, to, err)
		return nil, err
	}
	if affectedRows == 0 {
		return nil, ErrStatusConflict
	}

	booking.Status = to
	booking.UpdatedAt = time.Now()
	metrics.IncStatusTransition(string(from), string(to))

	oldValue := map[string]interface{}{"status": from}
	newValue := map[string]interface{}{"status": to}
	if reason != "" {
		newValue["reason"] = reason
	}
	if err := u.auditService.LogUpdate(ctx, actorID(ctx), action, "booking", bookingID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if to == entity.BookingStatusConfirmed {
		u.notificationService.BookingConfirmed(ctx, booking)
	}

	u.log.Infof("Booking status changed: id=%s, %s -> %s", bookingID, from, to)
	return converter.BookingToResponse(booking), nil
}

func (u *adminBookingUsecase) GetCancelledBookings(ctx context.Context) (*dto.CancelledBookingListResponse, error) {
	records, err := u.cancelledRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find cancelled bookings: %+v", err)
		return nil, err
	}

	return &dto.CancelledBookingListResponse{
		CancelledBookings: converter.CancelledBookingsToResponses(records),
		Total:             len(records),
	}, nil
}

func (u *adminBookingUsecase) findBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// bookingFilter converts query parameters into the repository filter.
func bookingFilter(query *dto.BookingFilterQuery) (*entity.BookingFilter, error) {
	filter := &entity.BookingFilter{}
	if query == nil {
		return filter, nil
	}

	if query.Status != "" {
		status := entity.BookingStatus(strings.ToLower(query.Status))
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		filter.Status = status
	}
	filter.Search = strings.TrimSpace(query.Search)

	if query.From != "" {
		from, err := entity.ParseDate(query.From)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := entity.ParseDate(query.To)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, ErrInvalidDateRange
	}

	return filter, nil
}
