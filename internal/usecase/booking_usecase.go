package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/infrastructure/metrics"
	"clinic-booking/internal/service"
	"clinic-booking/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrBookingNotFound = errors.New("booking not found")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context) (*dto.MyBookingsResponse, error)
}

type bookingUsecase struct {
	log                 *logrus.Logger
	doctorRepo          repository.DoctorRepository
	patientRepo         repository.PatientRepository
	bookingRepo         repository.BookingRepository
	cancelledRepo       repository.CancelledBookingRepository
	availabilityService service.AvailabilityService
	slotHolder          service.SlotHolder
	notificationService service.NotificationService
	auditService        service.AuditService
	phoneRegion         string
	now                 func() time.Time
}

func NewBookingUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	bookingRepo repository.BookingRepository,
	cancelledRepo repository.CancelledBookingRepository,
	availabilityService service.AvailabilityService,
	slotHolder service.SlotHolder,
	notificationService service.NotificationService,
	auditService service.AuditService,
	phoneRegion string,
	loc *time.Location,
) BookingUsecase {
	return &bookingUsecase{
		log:                 log,
		doctorRepo:          doctorRepo,
		patientRepo:         patientRepo,
		bookingRepo:         bookingRepo,
		cancelledRepo:       cancelledRepo,
		availabilityService: availabilityService,
		slotHolder:          slotHolder,
		notificationService: notificationService,
		auditService:        auditService,
		phoneRegion:         phoneRegion,
		now:                 clinicClock(loc),
	}
}

// CreateBooking books a slot for a new or returning patient.
//
// Flow:
// 1. Validate doctor exists and the date is not in the past
// 2. Check the slot is in the doctor's availability for that date
// 3. Take the Redis slot hold (SET NX) so concurrent submitters back off
// 4. Create-or-reuse the patient and insert the booking in one transaction
// 5. Release the hold, then send a best-effort confirmation email
//
// The partial unique index on active bookings is the final guard; a violation
// maps to ErrSlotUnavailable.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	day, err := bookableDate(req.Date, u.now())
	if err != nil {
		return nil, err
	}
	clock, err := entity.NormalizeClock(req.Time)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	// Step 1: Validate doctor exists
	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Step 2: Slot must be offered by the availability calculation
	if !containsSlot(u.availabilityService.AvailableSlots(ctx, doctor.ID, day), clock) {
		return nil, ErrSlotUnavailable
	}

	// Step 3: Slot hold
	token, err := u.slotHolder.Acquire(ctx, doctor.ID, day, clock)
	switch {
	case errors.Is(err, service.ErrSlotHeld):
		return nil, ErrSlotUnavailable
	case err != nil:
		// Redis trouble only loses the fast path; the unique index still decides
		u.log.Warnf("Proceeding without slot hold for doctor %s: %+v", doctor.ID, err)
	default:
		defer u.slotHolder.Release(context.WithoutCancel(ctx), doctor.ID, day, clock, token)
	}

	// Step 4: Create-or-reuse patient, insert booking
	patient, err := u.resolvePatient(ctx, req)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		DoctorID:    doctor.ID,
		BookingDate: day,
		BookingTime: clock,
		Status:      entity.BookingStatusPending,
		Notes:       strings.TrimSpace(req.Notes),
	}

	if err := u.bookingRepo.CreateWithPatient(ctx, patient, booking); err != nil {
		if isDuplicateKeyError(err, constraintActiveSlot) {
			return nil, ErrSlotUnavailable
		}
		if isForeignKeyError(err, constraintBookingDoctorFK) {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	booking.Patient = *patient
	booking.Doctor = *doctor
	metrics.IncBookingCreated()

	response := converter.BookingToResponse(booking)
	if err := u.auditService.LogCreate(ctx, actorID(ctx), entity.AuditActionBookingCreate, "booking", booking.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	// Step 5: Best-effort email
	u.notificationService.BookingReceived(ctx, booking)

	u.log.Infof("Booking created: id=%s, doctor=%s, date=%s, time=%s", booking.ID, doctor.ID, req.Date, clock)
	return response, nil
}

// GetMyBookings returns the live bookings and cancellation records of the
// patients that carry the signed-in user's email.
func (u *bookingUsecase) GetMyBookings(ctx context.Context) (*dto.MyBookingsResponse, error) {
	email, ok := middleware.GetUserEmailFromContext(ctx)
	if !ok || email == "" {
		return nil, ErrUnauthenticated
	}

	bookings, err := u.bookingRepo.FindByPatientEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find bookings for %s: %+v", email, err)
		return nil, err
	}

	cancelled, err := u.cancelledRepo.FindByPatientEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find cancelled bookings for %s: %+v", email, err)
		return nil, err
	}

	active := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsCancelled() {
			active = append(active, b)
		}
	}

	return &dto.MyBookingsResponse{
		Bookings:          converter.BookingsToResponses(active),
		CancelledBookings: converter.CancelledBookingsToResponses(cancelled),
	}, nil
}

// resolvePatient picks the patient a booking is attached to:
//   - an explicit patient id, only for a signed-in caller whose email or
//     submitted phone matches that record
//   - a patient with the same normalised phone and name
//   - otherwise a new unsaved patient
//
// A reused patient takes the submitted email when one is given, so the
// booking shows up under that address in GetMyBookings.
func (u *bookingUsecase) resolvePatient(ctx context.Context, req *dto.CreateBookingRequest) (*entity.Patient, error) {
	name := strings.TrimSpace(req.Name)
	phone := validator.NormalizePhone(req.Phone, u.phoneRegion)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	patient, err := u.findOwnedPatient(ctx, req, phone)
	if err != nil {
		return nil, err
	}

	if patient == nil {
		patient, err = u.patientRepo.FindByPhoneAndName(ctx, phone, name)
		if err != nil {
			u.log.Warnf("Failed to find patient by phone: %+v", err)
			return nil, err
		}
	}

	if patient == nil {
		return &entity.Patient{
			Name:   name,
			Age:    req.Age,
			Gender: req.Gender,
			Phone:  phone,
			Email:  email,
		}, nil
	}

	if email != "" && !strings.EqualFold(patient.Email, email) {
		patient.Email = email
	}
	return patient, nil
}

// findOwnedPatient returns the patient named by req.PatientID when the caller
// is signed in and owns it. Anything else yields nil so resolution falls back
// to phone and name.
func (u *bookingUsecase) findOwnedPatient(ctx context.Context, req *dto.CreateBookingRequest, phone string) (*entity.Patient, error) {
	if req.PatientID == nil {
		return nil, nil
	}
	sessionEmail, ok := middleware.GetUserEmailFromContext(ctx)
	if !ok || sessionEmail == "" {
		return nil, nil
	}

	patient, err := u.patientRepo.FindByID(ctx, *req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", *req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}

	if patient.Phone == phone || (patient.Email != "" && strings.EqualFold(patient.Email, sessionEmail)) {
		return patient, nil
	}
	u.log.Warnf("Ignoring patient_id %s not owned by %s", patient.ID, sessionEmail)
	return nil, nil
}

func containsSlot(slots []entity.TimeSlot, clock string) bool {
	for _, slot := range slots {
		if slot.SlotTime == clock {
			return true
		}
	}
	return false
}
