package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
	"clinic-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type TimeSlotHandler struct {
	timeSlotUsecase usecase.TimeSlotUsecase
	validator       *validator.CustomValidator
}

func NewTimeSlotHandler(timeSlotUsecase usecase.TimeSlotUsecase, validator *validator.CustomValidator) *TimeSlotHandler {
	return &TimeSlotHandler{
		timeSlotUsecase: timeSlotUsecase,
		validator:       validator,
	}
}

// GetActiveTimeSlots serves the public catalog.
func (h *TimeSlotHandler) GetActiveTimeSlots(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *TimeSlotHandler) GetAllTimeSlots(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *TimeSlotHandler) list(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	slots, err := h.timeSlotUsecase.GetTimeSlots(r.Context(), activeOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to get time slots")
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", slots)
}

func (h *TimeSlotHandler) CreateTimeSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.timeSlotUsecase.CreateTimeSlot(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTimeSlotExists:
			response.Conflict(w, "Time slot already exists")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create time slot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Time slot created successfully", slot)
}

func (h *TimeSlotHandler) ToggleTimeSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid time slot ID", nil)
		return
	}

	slot, err := h.timeSlotUsecase.ToggleTimeSlot(r.Context(), slotID)
	if err != nil {
		if err == usecase.ErrTimeSlotNotFound {
			response.NotFound(w, "Time slot not found")
			return
		}
		response.InternalServerError(w, "Failed to update time slot")
		return
	}

	response.Success(w, http.StatusOK, "Time slot updated successfully", slot)
}
