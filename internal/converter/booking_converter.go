package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:          booking.ID,
		BookingDate: booking.BookingDate.Format(entity.DateLayout),
		BookingTime: clock(booking.BookingTime),
		Status:      string(booking.Status),
		Notes:       booking.Notes,
		Patient:     PatientToSummary(&booking.Patient),
		Doctor:      DoctorToSummary(&booking.Doctor),
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}

// CancelledBookingToResponse converts a CancelledBooking entity to CancelledBookingResponse DTO
func CancelledBookingToResponse(cancelled *entity.CancelledBooking) *dto.CancelledBookingResponse {
	if cancelled == nil {
		return nil
	}

	return &dto.CancelledBookingResponse{
		ID:                 cancelled.ID,
		BookingID:          cancelled.BookingID,
		BookingDate:        cancelled.BookingDate.Format(entity.DateLayout),
		BookingTime:        clock(cancelled.BookingTime),
		Notes:              cancelled.Notes,
		CancellationReason: cancelled.CancellationReason,
		Patient:            PatientToSummary(&cancelled.Patient),
		Doctor:             DoctorToSummary(&cancelled.Doctor),
		CancelledAt:        cancelled.CancelledAt,
	}
}

func CancelledBookingsToResponses(cancelled []entity.CancelledBooking) []dto.CancelledBookingResponse {
	responses := make([]dto.CancelledBookingResponse, len(cancelled))
	for i := range cancelled {
		responses[i] = *CancelledBookingToResponse(&cancelled[i])
	}
	return responses
}
