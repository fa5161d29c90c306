// Package mocks holds testify mocks of the repository and service interfaces.
package mocks

import (
	"context"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type RoleRepository struct {
	mock.Mock
}

func (m *RoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

type DoctorRepository struct {
	mock.Mock
}

func (m *DoctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return m.Called(ctx, doctor).Error(0)
}

func (m *DoctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

func (m *DoctorRepository) FindAll(ctx context.Context, speciality string) ([]entity.Doctor, error) {
	args := m.Called(ctx, speciality)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Doctor), args.Error(1)
}

func (m *DoctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return m.Called(ctx, doctor).Error(0)
}

func (m *DoctorRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DoctorRepository) HasBookings(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *DoctorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *PatientRepository) FindWithBookings(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *PatientRepository) FindByPhoneAndName(ctx context.Context, phone, name string) (*entity.Patient, error) {
	args := m.Called(ctx, phone, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *PatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Patient), args.Error(1)
}

func (m *PatientRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type TimeSlotRepository struct {
	mock.Mock
}

func (m *TimeSlotRepository) Create(ctx context.Context, slot *entity.TimeSlot) error {
	return m.Called(ctx, slot).Error(0)
}

func (m *TimeSlotRepository) FindByID(ctx context.Context, id int) (*entity.TimeSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TimeSlot), args.Error(1)
}

func (m *TimeSlotRepository) FindAll(ctx context.Context, activeOnly bool) ([]entity.TimeSlot, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TimeSlot), args.Error(1)
}

func (m *TimeSlotRepository) SetActive(ctx context.Context, id int, active bool) (int64, error) {
	args := m.Called(ctx, id, active)
	return args.Get(0).(int64), args.Error(1)
}

type DoctorScheduleRepository struct {
	mock.Mock
}

func (m *DoctorScheduleRepository) Create(ctx context.Context, schedule *entity.DoctorSchedule) error {
	return m.Called(ctx, schedule).Error(0)
}

func (m *DoctorScheduleRepository) FindByID(ctx context.Context, id int) (*entity.DoctorSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorSchedule), args.Error(1)
}

func (m *DoctorScheduleRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorSchedule, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DoctorSchedule), args.Error(1)
}

func (m *DoctorScheduleRepository) FindByDoctorAndDay(ctx context.Context, doctorID uuid.UUID, day int) (*entity.DoctorSchedule, error) {
	args := m.Called(ctx, doctorID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorSchedule), args.Error(1)
}

func (m *DoctorScheduleRepository) Update(ctx context.Context, schedule *entity.DoctorSchedule) error {
	return m.Called(ctx, schedule).Error(0)
}

func (m *DoctorScheduleRepository) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) CreateWithPatient(ctx context.Context, patient *entity.Patient, booking *entity.Booking) error {
	return m.Called(ctx, patient, booking).Error(0)
}

func (m *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *BookingRepository) FindAll(ctx context.Context, filter *entity.BookingFilter) ([]entity.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *BookingRepository) FindByPatientEmail(ctx context.Context, email string) ([]entity.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *BookingRepository) FindBookedTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	args := m.Called(ctx, doctorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (int64, error) {
	args := m.Called(ctx, id, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BookingRepository) Cancel(ctx context.Context, booking *entity.Booking, reason string) (int64, error) {
	args := m.Called(ctx, booking, reason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BookingRepository) CountByStatus(ctx context.Context) (map[entity.BookingStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entity.BookingStatus]int64), args.Error(1)
}

type CancelledBookingRepository struct {
	mock.Mock
}

func (m *CancelledBookingRepository) FindAll(ctx context.Context) ([]entity.CancelledBooking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CancelledBooking), args.Error(1)
}

func (m *CancelledBookingRepository) FindByPatientEmail(ctx context.Context, email string) ([]entity.CancelledBooking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CancelledBooking), args.Error(1)
}

type ContactMessageRepository struct {
	mock.Mock
}

func (m *ContactMessageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	return m.Called(ctx, message).Error(0)
}

func (m *ContactMessageRepository) FindAll(ctx context.Context) ([]entity.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ContactMessage), args.Error(1)
}

func (m *ContactMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ContactMessageRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ContactMessageRepository) Count(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type AuditLogRepository struct {
	mock.Mock
}

func (m *AuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *AuditLogRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.AuditLog), args.Get(1).(int64), args.Error(2)
}
