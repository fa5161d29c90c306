package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/mocks"
	"clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	usecase       BookingUsecase
	doctorRepo    *mocks.DoctorRepository
	patientRepo   *mocks.PatientRepository
	bookingRepo   *mocks.BookingRepository
	cancelledRepo *mocks.CancelledBookingRepository
	availability  *mocks.AvailabilityService
	slotHolder    *mocks.SlotHolder
	notification  *mocks.NotificationService
	audit         *mocks.AuditService
}

var bookingDay = time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		doctorRepo:    new(mocks.DoctorRepository),
		patientRepo:   new(mocks.PatientRepository),
		bookingRepo:   new(mocks.BookingRepository),
		cancelledRepo: new(mocks.CancelledBookingRepository),
		availability:  new(mocks.AvailabilityService),
		slotHolder:    new(mocks.SlotHolder),
		notification:  new(mocks.NotificationService),
		audit:         new(mocks.AuditService),
	}
	f.audit.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notification.On("BookingReceived", mock.Anything, mock.Anything).Maybe()

	uc := NewBookingUsecase(quietLogger(), f.doctorRepo, f.patientRepo, f.bookingRepo, f.cancelledRepo,
		f.availability, f.slotHolder, f.notification, f.audit, "IN", time.UTC)
	uc.(*bookingUsecase).now = fixedClock(2026, time.March, 2)
	f.usecase = uc
	return f
}

func bookingRequest(doctorID uuid.UUID) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		DoctorID: doctorID,
		Name:     "Meera Nair",
		Age:      34,
		Gender:   entity.GenderFemale,
		Phone:    "+91 98765 43210",
		Email:    "Meera@Example.com",
		Date:     "2026-03-04",
		Time:     "10:00",
		Notes:    " follow-up ",
	}
}

// expectBookable arranges a doctor with 10:00 open and the hold granted.
func (f *bookingFixture) expectBookable(doctorID uuid.UUID) {
	f.doctorRepo.On("FindByID", mock.Anything, doctorID).Return(&entity.Doctor{ID: doctorID, Name: "Dr. Rao"}, nil)
	f.availability.On("AvailableSlots", mock.Anything, doctorID, bookingDay).Return([]entity.TimeSlot{
		{ID: 1, SlotTime: "09:30", IsActive: true},
		{ID: 2, SlotTime: "10:00", IsActive: true},
	})
	f.slotHolder.On("Acquire", mock.Anything, doctorID, bookingDay, "10:00").Return("hold-token", nil)
	f.slotHolder.On("Release", mock.Anything, doctorID, bookingDay, "10:00", "hold-token").Return()
}

func TestBooking_CreateNewPatient(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	doctorID := uuid.New()
	f.expectBookable(doctorID)

	f.patientRepo.On("FindByPhoneAndName", ctx, "+919876543210", "Meera Nair").Return(nil, nil)
	f.bookingRepo.On("CreateWithPatient", ctx,
		mock.MatchedBy(func(p *entity.Patient) bool {
			return p.ID == uuid.Nil && p.Phone == "+919876543210" && p.Email == "meera@example.com"
		}),
		mock.MatchedBy(func(b *entity.Booking) bool {
			return b.DoctorID == doctorID && b.BookingTime == "10:00" && b.Status == entity.BookingStatusPending && b.Notes == "follow-up"
		}),
	).Run(func(args mock.Arguments) {
		p := args.Get(1).(*entity.Patient)
		p.ID = uuid.New()
		b := args.Get(2).(*entity.Booking)
		b.ID = uuid.New()
		b.PatientID = p.ID
	}).Return(nil)

	resp, err := f.usecase.CreateBooking(ctx, bookingRequest(doctorID))

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
	assert.Equal(t, "2026-03-04", resp.BookingDate)
	require.NotNil(t, resp.Patient)
	assert.Equal(t, "Meera Nair", resp.Patient.Name)
	require.NotNil(t, resp.Doctor)
	assert.Equal(t, "Dr. Rao", resp.Doctor.Name)

	f.slotHolder.AssertCalled(t, "Release", mock.Anything, doctorID, bookingDay, "10:00", "hold-token")
	f.notification.AssertCalled(t, "BookingReceived", ctx, mock.Anything)
	f.audit.AssertCalled(t, "LogCreate", ctx, (*uuid.UUID)(nil), entity.AuditActionBookingCreate, "booking", mock.Anything, mock.Anything)
}

func TestBooking_CreateReusesReturningPatient(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	doctorID := uuid.New()
	f.expectBookable(doctorID)

	existing := &entity.Patient{ID: uuid.New(), Name: "Meera Nair", Age: 33, Phone: "+919876543210"}
	f.patientRepo.On("FindByPhoneAndName", ctx, "+919876543210", "Meera Nair").Return(existing, nil)
	f.bookingRepo.On("CreateWithPatient", ctx, existing, mock.Anything).Return(nil)

	resp, err := f.usecase.CreateBooking(ctx, bookingRequest(doctorID))
	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.Patient.ID)
	assert.Equal(t, 33, resp.Patient.Age)
}

func TestBooking_ReturningPatientTakesSubmittedEmail(t *testing.T) {
	for name, stored := range map[string]string{
		"no email":        "",
		"different email": "old@example.com",
	} {
		t.Run(name, func(t *testing.T) {
			f := newBookingFixture()
			ctx := context.Background()
			doctorID := uuid.New()
			f.expectBookable(doctorID)

			existing := &entity.Patient{ID: uuid.New(), Name: "Meera Nair", Phone: "+919876543210", Email: stored}
			f.patientRepo.On("FindByPhoneAndName", ctx, "+919876543210", "Meera Nair").Return(existing, nil)
			f.bookingRepo.On("CreateWithPatient", ctx, mock.MatchedBy(func(p *entity.Patient) bool {
				return p.ID == existing.ID && p.Email == "meera@example.com"
			}), mock.Anything).Return(nil)

			_, err := f.usecase.CreateBooking(ctx, bookingRequest(doctorID))
			require.NoError(t, err)
			f.bookingRepo.AssertExpectations(t)
		})
	}
}

func TestBooking_ReturningPatientKeepsEmailWhenNoneSubmitted(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	doctorID := uuid.New()
	f.expectBookable(doctorID)

	existing := &entity.Patient{ID: uuid.New(), Name: "Meera Nair", Phone: "+919876543210", Email: "meera@example.com"}
	f.patientRepo.On("FindByPhoneAndName", ctx, "+919876543210", "Meera Nair").Return(existing, nil)
	f.bookingRepo.On("CreateWithPatient", ctx, existing, mock.Anything).Return(nil)

	req := bookingRequest(doctorID)
	req.Email = ""
	_, err := f.usecase.CreateBooking(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "meera@example.com", existing.Email)
}

func TestBooking_CreateWithExplicitPatientID(t *testing.T) {
	f := newBookingFixture()
	ctx, _ := sessionContext(entity.RoleIDPatient, "meera@example.com")
	doctorID := uuid.New()
	f.expectBookable(doctorID)

	existing := &entity.Patient{ID: uuid.New(), Name: "Meera N", Phone: "+919876543210"}
	f.patientRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	f.bookingRepo.On("CreateWithPatient", ctx, existing, mock.Anything).Return(nil)

	req := bookingRequest(doctorID)
	req.PatientID = &existing.ID
	_, err := f.usecase.CreateBooking(ctx, req)

	require.NoError(t, err)
	f.patientRepo.AssertNotCalled(t, "FindByPhoneAndName", mock.Anything, mock.Anything, mock.Anything)
}

func TestBooking_AnonymousPatientIDIgnored(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	doctorID := uuid.New()
	f.expectBookable(doctorID)

	victimID := uuid.New()
	f.patientRepo.On("FindByPhoneAndName", ctx, "+919876543210", "Attacker").Return(nil, nil)
	f.bookingRepo.On("CreateWithPatient", ctx, mock.MatchedBy(func(p *entity.Patient) bool {
		return p.ID == uuid.Nil && p.Name == "Attacker"
	}), mock.Anything).Return(nil)

	req := bookingRequest(doctorID)
	req.Name = "Attacker"
	req.PatientID = &victimID
	resp, err := f.usecase.CreateBooking(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "Attacker", resp.Patient.Name)
	f.patientRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestBooking_PatientIDOfSomeoneElseFallsBack(t *testing.T) {
	f := newBookingFixture()
	ctx, _ := sessionContext(entity.RoleIDPatient, "meera@example.com")
	doctorID := uuid.New()
	f.expectBookable(doctorID)

	victim := &entity.Patient{ID: uuid.New(), Name: "Victim", Phone: "+919999999999", Email: "victim@example.com"}
	f.patientRepo.On("FindByID", ctx, victim.ID).Return(victim, nil)
	f.patientRepo.On("FindByPhoneAndName", ctx, "+919876543210", "Meera Nair").Return(nil, nil)
	f.bookingRepo.On("CreateWithPatient", ctx, mock.MatchedBy(func(p *entity.Patient) bool {
		return p.ID == uuid.Nil && p.Phone == "+919876543210"
	}), mock.Anything).Return(nil)

	req := bookingRequest(doctorID)
	req.PatientID = &victim.ID
	resp, err := f.usecase.CreateBooking(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "Meera Nair", resp.Patient.Name)
	assert.Equal(t, "victim@example.com", victim.Email)
}

func TestBooking_CreateRejectsSlotOutsideAvailability(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	doctorID := uuid.New()
	f.expectBookable(doctorID)

	req := bookingRequest(doctorID)
	req.Time = "11:00"
	_, err := f.usecase.CreateBooking(ctx, req)

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	f.slotHolder.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.bookingRepo.AssertNotCalled(t, "CreateWithPatient", mock.Anything, mock.Anything, mock.Anything)
}

func TestBooking_CreateRejectsHeldSlot(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	doctorID := uuid.New()
	f.doctorRepo.On("FindByID", ctx, doctorID).Return(&entity.Doctor{ID: doctorID}, nil)
	f.availability.On("AvailableSlots", ctx, doctorID, bookingDay).Return([]entity.TimeSlot{{ID: 2, SlotTime: "10:00", IsActive: true}})
	f.slotHolder.On("Acquire", ctx, doctorID, bookingDay, "10:00").Return("", service.ErrSlotHeld)

	_, err := f.usecase.CreateBooking(ctx, bookingRequest(doctorID))

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	f.bookingRepo.AssertNotCalled(t, "CreateWithPatient", mock.Anything, mock.Anything, mock.Anything)
}

func TestBooking_CreateProceedsWhenHoldStoreFails(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	doctorID := uuid.New()
	f.doctorRepo.On("FindByID", ctx, doctorID).Return(&entity.Doctor{ID: doctorID}, nil)
	f.availability.On("AvailableSlots", ctx, doctorID, bookingDay).Return([]entity.TimeSlot{{ID: 2, SlotTime: "10:00", IsActive: true}})
	f.slotHolder.On("Acquire", ctx, doctorID, bookingDay, "10:00").Return("", errors.New("redis: connection refused"))
	f.patientRepo.On("FindByPhoneAndName", ctx, mock.Anything, mock.Anything).Return(nil, nil)
	f.bookingRepo.On("CreateWithPatient", ctx, mock.Anything, mock.Anything).Return(nil)

	_, err := f.usecase.CreateBooking(ctx, bookingRequest(doctorID))

	require.NoError(t, err)
	f.slotHolder.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBooking_CreateLosesRaceOnUniqueIndex(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	doctorID := uuid.New()
	f.expectBookable(doctorID)
	f.patientRepo.On("FindByPhoneAndName", ctx, mock.Anything, mock.Anything).Return(nil, nil)
	f.bookingRepo.On("CreateWithPatient", ctx, mock.Anything, mock.Anything).Return(pgError(pgUniqueViolation, constraintActiveSlot))

	_, err := f.usecase.CreateBooking(ctx, bookingRequest(doctorID))

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	f.slotHolder.AssertCalled(t, "Release", mock.Anything, doctorID, bookingDay, "10:00", "hold-token")
	f.notification.AssertNotCalled(t, "BookingReceived", mock.Anything, mock.Anything)
}

func TestBooking_CreateInputErrors(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	doctorID := uuid.New()

	req := bookingRequest(doctorID)
	req.Date = "2026-03-01"
	_, err := f.usecase.CreateBooking(ctx, req)
	assert.ErrorIs(t, err, ErrDateInPast)

	req = bookingRequest(doctorID)
	req.Date = "04/03/2026"
	_, err = f.usecase.CreateBooking(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	req = bookingRequest(doctorID)
	req.Time = "ten"
	_, err = f.usecase.CreateBooking(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	f.doctorRepo.On("FindByID", ctx, doctorID).Return(nil, nil)
	_, err = f.usecase.CreateBooking(ctx, bookingRequest(doctorID))
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestBooking_CreateTodayIsAllowed(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	doctorID := uuid.New()
	today := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	f.doctorRepo.On("FindByID", ctx, doctorID).Return(&entity.Doctor{ID: doctorID}, nil)
	f.availability.On("AvailableSlots", ctx, doctorID, today).Return([]entity.TimeSlot{})

	req := bookingRequest(doctorID)
	req.Date = "2026-03-02"
	_, err := f.usecase.CreateBooking(ctx, req)

	// Past the date check, stopped only because nothing is open
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestBooking_GetMyBookings(t *testing.T) {
	f := newBookingFixture()
	ctx, _ := sessionContext(entity.RoleIDPatient, "meera@example.com")

	f.bookingRepo.On("FindByPatientEmail", ctx, "meera@example.com").Return([]entity.Booking{
		{ID: uuid.New(), Status: entity.BookingStatusPending, BookingDate: bookingDay, BookingTime: "10:00"},
		{ID: uuid.New(), Status: entity.BookingStatusCancelled, BookingDate: bookingDay, BookingTime: "09:30"},
	}, nil)
	f.cancelledRepo.On("FindByPatientEmail", ctx, "meera@example.com").Return([]entity.CancelledBooking{
		{ID: uuid.New(), BookingDate: bookingDay, BookingTime: "09:30", CancellationReason: "doctor unavailable"},
	}, nil)

	resp, err := f.usecase.GetMyBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Bookings[0].Status)
	require.Len(t, resp.CancelledBookings, 1)
	assert.Equal(t, "doctor unavailable", resp.CancelledBookings[0].CancellationReason)

	_, err = f.usecase.GetMyBookings(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
