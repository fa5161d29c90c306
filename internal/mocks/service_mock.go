package mocks

import (
	"context"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type SlotHolder struct {
	mock.Mock
}

func (m *SlotHolder) Acquire(ctx context.Context, doctorID uuid.UUID, date time.Time, clock string) (string, error) {
	args := m.Called(ctx, doctorID, date, clock)
	return args.String(0), args.Error(1)
}

func (m *SlotHolder) Release(ctx context.Context, doctorID uuid.UUID, date time.Time, clock, token string) {
	m.Called(ctx, doctorID, date, clock, token)
}

type AvailabilityService struct {
	mock.Mock
}

func (m *AvailabilityService) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) []entity.TimeSlot {
	args := m.Called(ctx, doctorID, date)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]entity.TimeSlot)
}

type AuditService struct {
	mock.Mock
}

func (m *AuditService) LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return m.Called(ctx, userID, action, entityName, entityID, newValue).Error(0)
}

func (m *AuditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return m.Called(ctx, userID, action, entityName, entityID, oldValue, newValue).Error(0)
}

func (m *AuditService) LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return m.Called(ctx, userID, action, entityName, entityID, oldValue).Error(0)
}

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) BookingReceived(ctx context.Context, booking *entity.Booking) {
	m.Called(ctx, booking)
}

func (m *NotificationService) BookingConfirmed(ctx context.Context, booking *entity.Booking) {
	m.Called(ctx, booking)
}
