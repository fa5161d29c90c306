package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrRegistrationExists = errors.New("registration number already exists")
	ErrDoctorHasBookings  = errors.New("doctor has bookings and cannot be deleted")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context, speciality string) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Name:           strings.TrimSpace(req.Name),
		Speciality:     strings.TrimSpace(req.Speciality),
		Experience:     req.Experience,
		RegistrationNo: optionalString(req.RegistrationNo),
		ImageURL:       req.ImageURL,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		if isDuplicateKeyError(err, constraintRegistrationNo) {
			return nil, ErrRegistrationExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	response := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogCreate(ctx, actorID(ctx), entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Doctor created: id=%s", doctor.ID)
	return response, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context, speciality string) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, strings.TrimSpace(speciality))
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Capture old value for audit
	oldValue := converter.DoctorToResponse(doctor)

	if req.Name != "" {
		doctor.Name = strings.TrimSpace(req.Name)
	}
	if req.Speciality != "" {
		doctor.Speciality = strings.TrimSpace(req.Speciality)
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}
	if req.RegistrationNo != nil {
		doctor.RegistrationNo = optionalString(*req.RegistrationNo)
	}
	if req.ImageURL != nil {
		doctor.ImageURL = strings.TrimSpace(*req.ImageURL)
	}

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		if isDuplicateKeyError(err, constraintRegistrationNo) {
			return nil, ErrRegistrationExists
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogUpdate(ctx, actorID(ctx), entity.AuditActionDoctorUpdate, "doctor", doctorID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

// DeleteDoctor refuses while any booking, in any status, references the doctor.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	hasBookings, err := u.doctorRepo.HasBookings(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to check doctor bookings: %+v", err)
		return err
	}
	if hasBookings {
		return ErrDoctorHasBookings
	}

	affectedRows, err := u.doctorRepo.Delete(ctx, doctorID)
	if err != nil {
		// A booking inserted after the check still trips the foreign key
		if isForeignKeyError(err, constraintBookingDoctorFK) {
			return ErrDoctorHasBookings
		}
		u.log.Warnf("Failed delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	if err := u.auditService.LogDelete(ctx, actorID(ctx), entity.AuditActionDoctorDelete, "doctor", doctorID.String(), converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Doctor deleted: id=%s", doctorID)
	return nil
}

// optionalString maps blank input to NULL so the partial unique index ignores it.
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
