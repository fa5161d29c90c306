package usecase

import (
	"context"
	"errors"
	"strconv"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrTimeSlotNotFound = errors.New("time slot not found")
	ErrTimeSlotExists   = errors.New("time slot already exists")
)

type TimeSlotUsecase interface {
	GetTimeSlots(ctx context.Context, activeOnly bool) (*dto.TimeSlotListResponse, error)
	CreateTimeSlot(ctx context.Context, req *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error)
	ToggleTimeSlot(ctx context.Context, slotID int) (*dto.TimeSlotResponse, error)
}

type timeSlotUsecase struct {
	log          *logrus.Logger
	timeSlotRepo repository.TimeSlotRepository
	auditService service.AuditService
}

func NewTimeSlotUsecase(
	log *logrus.Logger,
	timeSlotRepo repository.TimeSlotRepository,
	auditService service.AuditService,
) TimeSlotUsecase {
	return &timeSlotUsecase{
		log:          log,
		timeSlotRepo: timeSlotRepo,
		auditService: auditService,
	}
}

func (u *timeSlotUsecase) GetTimeSlots(ctx context.Context, activeOnly bool) (*dto.TimeSlotListResponse, error) {
	slots, err := u.timeSlotRepo.FindAll(ctx, activeOnly)
	if err != nil {
		u.log.Warnf("Failed to find time slots: %+v", err)
		return nil, err
	}

	return &dto.TimeSlotListResponse{
		TimeSlots: converter.TimeSlotsToResponses(slots),
		Total:     len(slots),
	}, nil
}

func (u *timeSlotUsecase) CreateTimeSlot(ctx context.Context, req *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error) {
	slotTime, err := entity.NormalizeClock(req.SlotTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	slot := &entity.TimeSlot{SlotTime: slotTime, IsActive: isActive}
	if err := u.timeSlotRepo.Create(ctx, slot); err != nil {
		if isDuplicateKeyError(err, constraintTimeSlotTime) {
			return nil, ErrTimeSlotExists
		}
		u.log.Warnf("Failed to create time slot: %+v", err)
		return nil, err
	}

	response := converter.TimeSlotToResponse(slot)
	if err := u.auditService.LogCreate(ctx, actorID(ctx), entity.AuditActionTimeSlotCreate, "time_slot", strconv.Itoa(slot.ID), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *timeSlotUsecase) ToggleTimeSlot(ctx context.Context, slotID int) (*dto.TimeSlotResponse, error) {
	slot, err := u.timeSlotRepo.FindByID(ctx, slotID)
	if err != nil {
		u.log.Warnf("Failed to find time slot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrTimeSlotNotFound
	}

	oldValue := converter.TimeSlotToResponse(slot)

	affectedRows, err := u.timeSlotRepo.SetActive(ctx, slotID, !slot.IsActive)
	if err != nil {
		u.log.Warnf("Failed to update time slot: %+v", err)
		return nil, err
	}
	if affectedRows == 0 {
		return nil, ErrTimeSlotNotFound
	}
	slot.IsActive = !slot.IsActive

	newValue := converter.TimeSlotToResponse(slot)
	if err := u.auditService.LogUpdate(ctx, actorID(ctx), entity.AuditActionTimeSlotUpdate, "time_slot", strconv.Itoa(slotID), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}
