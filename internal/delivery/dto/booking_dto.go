package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	DoctorID  uuid.UUID  `json:"doctor_id" validate:"required"`
	PatientID *uuid.UUID `json:"patient_id"`
	Name      string     `json:"name" validate:"required,min=2,max=255"`
	Age       int        `json:"age" validate:"required,gte=1,lte=120"`
	Gender    string     `json:"gender" validate:"required,oneof=Male Female Other"`
	Phone     string     `json:"phone" validate:"required,phone,max=20"`
	Email     string     `json:"email" validate:"omitempty,email"`
	Date      string     `json:"date" validate:"required,date"`
	Time      string     `json:"time" validate:"required,clock"`
	Notes     string     `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	Reason string `json:"reason" validate:"omitempty,max=1000"`
}

// BookingFilterQuery is read from the admin list query string.
type BookingFilterQuery struct {
	Status string `validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Search string `validate:"omitempty,max=100"`
	From   string `validate:"omitempty,date"`
	To     string `validate:"omitempty,date"`
}

// Response DTOs

type BookingResponse struct {
	ID          uuid.UUID       `json:"id"`
	BookingDate string          `json:"booking_date"`
	BookingTime string          `json:"booking_time"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	Patient     *PatientSummary `json:"patient,omitempty"`
	Doctor      *DoctorSummary  `json:"doctor,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type CancelledBookingResponse struct {
	ID                 uuid.UUID       `json:"id"`
	BookingID          uuid.UUID       `json:"booking_id"`
	BookingDate        string          `json:"booking_date"`
	BookingTime        string          `json:"booking_time"`
	Notes              string          `json:"notes,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	Patient            *PatientSummary `json:"patient,omitempty"`
	Doctor             *DoctorSummary  `json:"doctor,omitempty"`
	CancelledAt        time.Time       `json:"cancelled_at"`
}

type CancelledBookingListResponse struct {
	CancelledBookings []CancelledBookingResponse `json:"cancelled_bookings"`
	Total             int                        `json:"total"`
}

// MyBookingsResponse is what a signed-in patient sees: live bookings plus cancellation records.
type MyBookingsResponse struct {
	Bookings          []BookingResponse          `json:"bookings"`
	CancelledBookings []CancelledBookingResponse `json:"cancelled_bookings"`
}
