package dto

// Request DTOs

type CreateTimeSlotRequest struct {
	SlotTime string `json:"slot_time" validate:"required,clock"`
	IsActive *bool  `json:"is_active"`
}

// Response DTOs

type TimeSlotResponse struct {
	ID       int    `json:"id"`
	SlotTime string `json:"slot_time"`
	IsActive bool   `json:"is_active"`
}

type TimeSlotListResponse struct {
	TimeSlots []TimeSlotResponse `json:"time_slots"`
	Total     int                `json:"total"`
}
