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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrScheduleDayExists     = errors.New("doctor already has a schedule for this day")
	ErrInvalidScheduleWindow = errors.New("start time must be before end time")
	ErrInvalidTimeFormat     = errors.New("invalid time format, use HH:MM")
)

type DoctorScheduleUsecase interface {
	CreateSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleResponse, error)
	GetSchedulesByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error)
	UpdateSchedule(ctx context.Context, scheduleID int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	ToggleSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, scheduleID int) error
}

type doctorScheduleUsecase struct {
	log          *logrus.Logger
	scheduleRepo repository.DoctorScheduleRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorScheduleUsecase(
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		log:          log,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorScheduleUsecase) CreateSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	// Validate doctor exists
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	start, end, err := scheduleWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	existing, err := u.scheduleRepo.FindByDoctorAndDay(ctx, doctorID, *req.DayOfWeek)
	if err != nil {
		u.log.Warnf("Failed to find schedule by day: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrScheduleDayExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	schedule := &entity.DoctorSchedule{
		DoctorID:  doctorID,
		DayOfWeek: *req.DayOfWeek,
		StartTime: start,
		EndTime:   end,
		IsActive:  isActive,
	}

	if err := u.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, u.mapWriteError("create", err)
	}

	response := converter.ScheduleToResponse(schedule)
	if err := u.auditService.LogCreate(ctx, actorID(ctx), entity.AuditActionScheduleCreate, "doctor_schedule", scheduleEntityID(schedule), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

func (u *doctorScheduleUsecase) GetSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleResponse, error) {
	schedule, err := u.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) GetSchedulesByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	schedules, err := u.scheduleRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *doctorScheduleUsecase) UpdateSchedule(ctx context.Context, scheduleID int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := u.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	// Capture old value for audit
	oldValue := converter.ScheduleToResponse(schedule)

	startTime := schedule.StartTime
	if req.StartTime != "" {
		startTime = req.StartTime
	}
	endTime := schedule.EndTime
	if req.EndTime != "" {
		endTime = req.EndTime
	}
	start, end, err := scheduleWindow(startTime, endTime)
	if err != nil {
		return nil, err
	}

	if req.DayOfWeek != nil && *req.DayOfWeek != schedule.DayOfWeek {
		existing, err := u.scheduleRepo.FindByDoctorAndDay(ctx, schedule.DoctorID, *req.DayOfWeek)
		if err != nil {
			u.log.Warnf("Failed to find schedule by day: %+v", err)
			return nil, err
		}
		if existing != nil && existing.ID != schedule.ID {
			return nil, ErrScheduleDayExists
		}
		schedule.DayOfWeek = *req.DayOfWeek
	}

	schedule.StartTime = start
	schedule.EndTime = end
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}

	if err := u.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, u.mapWriteError("update", err)
	}

	newValue := converter.ScheduleToResponse(schedule)
	if err := u.auditService.LogUpdate(ctx, actorID(ctx), entity.AuditActionScheduleUpdate, "doctor_schedule", scheduleEntityID(schedule), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

// ToggleSchedule flips is_active without touching the working window.
func (u *doctorScheduleUsecase) ToggleSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleResponse, error) {
	schedule, err := u.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	active := !schedule.IsActive
	return u.UpdateSchedule(ctx, scheduleID, &dto.UpdateScheduleRequest{IsActive: &active})
}

func (u *doctorScheduleUsecase) DeleteSchedule(ctx context.Context, scheduleID int) error {
	schedule, err := u.findSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}

	affectedRows, err := u.scheduleRepo.Delete(ctx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrScheduleNotFound
	}

	if err := u.auditService.LogDelete(ctx, actorID(ctx), entity.AuditActionScheduleDelete, "doctor_schedule", scheduleEntityID(schedule), converter.ScheduleToResponse(schedule)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *doctorScheduleUsecase) findSchedule(ctx context.Context, scheduleID int) (*entity.DoctorSchedule, error) {
	schedule, err := u.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	return schedule, nil
}

func (u *doctorScheduleUsecase) mapWriteError(op string, err error) error {
	switch {
	case isDuplicateKeyError(err, constraintScheduleDoctorDay):
		return ErrScheduleDayExists
	case isCheckViolation(err, constraintScheduleWindow):
		return ErrInvalidScheduleWindow
	case isForeignKeyError(err, constraintScheduleDoctorFK):
		return ErrDoctorNotFound
	}
	u.log.Warnf("Failed to %s schedule: %+v", op, err)
	return err
}

// scheduleWindow normalizes both bounds to HH:MM and requires start < end.
func scheduleWindow(startTime, endTime string) (string, string, error) {
	start, err := entity.ParseClock(startTime)
	if err != nil {
		return "", "", ErrInvalidTimeFormat
	}
	end, err := entity.ParseClock(endTime)
	if err != nil {
		return "", "", ErrInvalidTimeFormat
	}
	if start >= end {
		return "", "", ErrInvalidScheduleWindow
	}
	return entity.FormatClock(start), entity.FormatClock(end), nil
}

func scheduleEntityID(schedule *entity.DoctorSchedule) string {
	return strconv.Itoa(schedule.ID)
}
