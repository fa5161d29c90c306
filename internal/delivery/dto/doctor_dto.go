package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=255"`
	Speciality     string `json:"speciality" validate:"required,max=100"`
	Experience     int    `json:"experience" validate:"gte=0,lte=80"`
	RegistrationNo string `json:"registration_no" validate:"omitempty,max=50"`
	ImageURL       string `json:"image_url" validate:"omitempty,url"`
}

type UpdateDoctorRequest struct {
	Name           string  `json:"name" validate:"omitempty,min=2,max=255"`
	Speciality     string  `json:"speciality" validate:"omitempty,max=100"`
	Experience     *int    `json:"experience" validate:"omitempty,gte=0,lte=80"`
	RegistrationNo *string `json:"registration_no" validate:"omitempty,max=50"`
	ImageURL       *string `json:"image_url" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Speciality     string             `json:"speciality"`
	Experience     int                `json:"experience"`
	RegistrationNo string             `json:"registration_no,omitempty"`
	ImageURL       string             `json:"image_url,omitempty"`
	Schedules      []ScheduleResponse `json:"schedules,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// DoctorSummary is the short form embedded in bookings.
type DoctorSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Speciality string    `json:"speciality"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
