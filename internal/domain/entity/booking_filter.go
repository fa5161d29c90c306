package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingFilter is a domain-level filter for querying bookings.
// Used by repository layer to avoid coupling with delivery DTOs.
type BookingFilter struct {
	Status    BookingStatus // Exact status match
	Search    string        // Patient name, doctor name (ILIKE) or patient phone
	From      *time.Time    // Inclusive lower bound on booking_date
	To        *time.Time    // Inclusive upper bound on booking_date
	PatientID uuid.UUID
	DoctorID  uuid.UUID
}
