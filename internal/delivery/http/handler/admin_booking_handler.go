package handler

import (
	"encoding/json"
	"net/http"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
	"clinic-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminBookingHandler struct {
	adminBookingUsecase usecase.AdminBookingUsecase
	validator           *validator.CustomValidator
}

func NewAdminBookingHandler(adminBookingUsecase usecase.AdminBookingUsecase, validator *validator.CustomValidator) *AdminBookingHandler {
	return &AdminBookingHandler{
		adminBookingUsecase: adminBookingUsecase,
		validator:           validator,
	}
}

func (h *AdminBookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &dto.BookingFilterQuery{
		Status: q.Get("status"),
		Search: q.Get("search"),
		From:   q.Get("from"),
		To:     q.Get("to"),
	}

	bookings, err := h.adminBookingUsecase.GetBookings(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus, usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get bookings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *AdminBookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.adminBookingUsecase.GetBooking(r.Context(), bookingID)
	if err != nil {
		if err == usecase.ErrBookingNotFound {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *AdminBookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.adminBookingUsecase.UpdateStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrInvalidStatus:
			response.BadRequest(w, err.Error())
		case usecase.ErrInvalidStatusTransition, usecase.ErrStatusConflict:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update booking status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking status updated successfully", booking)
}

func (h *AdminBookingHandler) GetCancelledBookings(w http.ResponseWriter, r *http.Request) {
	records, err := h.adminBookingUsecase.GetCancelledBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get cancelled bookings")
		return
	}

	response.Success(w, http.StatusOK, "Cancelled bookings retrieved successfully", records)
}
