package dto

import "github.com/google/uuid"

type AvailabilityResponse struct {
	DoctorID  uuid.UUID          `json:"doctor_id"`
	Date      string             `json:"date"`
	DayOfWeek int                `json:"day_of_week"`
	Slots     []TimeSlotResponse `json:"slots"`
}
