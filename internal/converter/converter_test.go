package converter

import (
	"testing"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingToResponse_NormalizesClockAndEmbedsSummaries(t *testing.T) {
	doctor := entity.Doctor{ID: uuid.New(), Name: "Dr. Rao", Speciality: "Cardiology"}
	patient := entity.Patient{ID: uuid.New(), Name: "Asha", Age: 34, Gender: entity.GenderFemale, Phone: "+919876543210"}
	booking := &entity.Booking{
		ID:          uuid.New(),
		BookingDate: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		BookingTime: "10:30:00",
		Status:      entity.BookingStatusPending,
		Patient:     patient,
		Doctor:      doctor,
	}

	resp := BookingToResponse(booking)
	require.NotNil(t, resp)

	assert.Equal(t, "2026-10-19", resp.BookingDate)
	assert.Equal(t, "10:30", resp.BookingTime)
	assert.Equal(t, "pending", resp.Status)
	require.NotNil(t, resp.Doctor)
	assert.Equal(t, "Dr. Rao", resp.Doctor.Name)
	require.NotNil(t, resp.Patient)
	assert.Equal(t, 34, resp.Patient.Age)
}

func TestBookingToResponse_OmitsUnloadedRelations(t *testing.T) {
	resp := BookingToResponse(&entity.Booking{ID: uuid.New(), BookingTime: "09:00"})

	assert.Nil(t, resp.Doctor)
	assert.Nil(t, resp.Patient)
	assert.Nil(t, BookingToResponse(nil))
}

func TestDoctorToResponse(t *testing.T) {
	reg := "MCI-1001"
	doctor := &entity.Doctor{
		ID:             uuid.New(),
		Name:           "Dr. Mehta",
		RegistrationNo: &reg,
		Schedules: []entity.DoctorSchedule{
			{ID: 1, DayOfWeek: 1, StartTime: "09:00:00", EndTime: "12:00:00", IsActive: true},
		},
	}

	resp := DoctorToResponse(doctor)

	assert.Equal(t, "MCI-1001", resp.RegistrationNo)
	require.Len(t, resp.Schedules, 1)
	assert.Equal(t, "Monday", resp.Schedules[0].DayName)
	assert.Equal(t, "09:00", resp.Schedules[0].StartTime)
	assert.Equal(t, "12:00", resp.Schedules[0].EndTime)
}

func TestUserToResponse_FallsBackToSeededRole(t *testing.T) {
	resp := UserToResponse(&entity.User{ID: uuid.New(), RoleID: entity.RoleIDAdmin, FirstName: "Admin"})

	assert.Equal(t, entity.RoleAdmin, resp.Role)
}

func TestAuditLogToResponse(t *testing.T) {
	uid := uuid.New()
	log := &entity.AuditLog{
		ID:       7,
		UserID:   &uid,
		Action:   entity.AuditActionDoctorDelete,
		Metadata: entity.JSON{"entity": "doctor"},
		User:     &entity.User{Email: "admin@clinic.test"},
	}

	resp := AuditLogToResponse(log)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "admin@clinic.test", resp.UserEmail)
	assert.Equal(t, "doctor", resp.Metadata["entity"])
}
