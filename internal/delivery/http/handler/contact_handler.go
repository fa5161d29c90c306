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

type ContactHandler struct {
	messageUsecase usecase.ContactMessageUsecase
	validator      *validator.CustomValidator
}

func NewContactHandler(messageUsecase usecase.ContactMessageUsecase, validator *validator.CustomValidator) *ContactHandler {
	return &ContactHandler{
		messageUsecase: messageUsecase,
		validator:      validator,
	}
}

func (h *ContactHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.messageUsecase.CreateMessage(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to send message")
		return
	}

	response.Success(w, http.StatusCreated, "Message sent successfully", message)
}

func (h *ContactHandler) GetAllMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageUsecase.GetAllMessages(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get messages")
		return
	}

	response.Success(w, http.StatusOK, "Messages retrieved successfully", messages)
}

func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	messageID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid message ID", nil)
		return
	}

	if err := h.messageUsecase.MarkRead(r.Context(), messageID); err != nil {
		if err == usecase.ErrMessageNotFound {
			response.NotFound(w, "Message not found")
			return
		}
		response.InternalServerError(w, "Failed to update message")
		return
	}

	response.Success(w, http.StatusOK, "Message marked as read", nil)
}

func (h *ContactHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	messageID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid message ID", nil)
		return
	}

	if err := h.messageUsecase.DeleteMessage(r.Context(), messageID); err != nil {
		if err == usecase.ErrMessageNotFound {
			response.NotFound(w, "Message not found")
			return
		}
		response.InternalServerError(w, "Failed to delete message")
		return
	}

	response.Success(w, http.StatusOK, "Message deleted successfully", nil)
}
