package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type PatientResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Age       int               `json:"age"`
	Gender    string            `json:"gender"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email,omitempty"`
	Bookings  []BookingResponse `json:"bookings,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// PatientSummary is the short form embedded in bookings.
type PatientSummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Age    int       `json:"age"`
	Gender string    `json:"gender"`
	Phone  string    `json:"phone"`
	Email  string    `json:"email,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
