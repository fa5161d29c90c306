package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminBookingHandler_GetBookingsPassesQuery(t *testing.T) {
	uc := new(mockAdminBookingUsecase)
	h := NewAdminBookingHandler(uc, validator.NewValidator())
	uc.On("GetBookings", mock.Anything, &dto.BookingFilterQuery{
		Status: "pending", Search: "meera", From: "2026-03-01", To: "2026-03-31",
	}).Return(&dto.BookingListResponse{Total: 0}, nil)

	rec := httptest.NewRecorder()
	h.GetBookings(rec, newRequest(t, http.MethodGet, "/api/v1/admin/bookings?status=pending&search=meera&from=2026-03-01&to=2026-03-31", nil, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestAdminBookingHandler_GetBookingsBadFilter(t *testing.T) {
	uc := new(mockAdminBookingUsecase)
	h := NewAdminBookingHandler(uc, validator.NewValidator())
	uc.On("GetBookings", mock.Anything, mock.Anything).Return(nil, usecase.ErrInvalidDateRange)

	rec := httptest.NewRecorder()
	h.GetBookings(rec, newRequest(t, http.MethodGet, "/api/v1/admin/bookings?from=2026-03-31&to=2026-03-01", nil, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminBookingHandler_UpdateStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"not found", usecase.ErrBookingNotFound, http.StatusNotFound},
		{"bad transition", usecase.ErrInvalidStatusTransition, http.StatusConflict},
		{"lost race", usecase.ErrStatusConflict, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := new(mockAdminBookingUsecase)
			h := NewAdminBookingHandler(uc, validator.NewValidator())
			id := uuid.New()
			call := uc.On("UpdateStatus", mock.Anything, id, &dto.UpdateBookingStatusRequest{Status: "confirmed"})
			if tc.err != nil {
				call.Return(nil, tc.err)
			} else {
				call.Return(&dto.BookingResponse{ID: id, Status: "confirmed"}, nil)
			}

			rec := httptest.NewRecorder()
			h.UpdateStatus(rec, newRequest(t, http.MethodPatch, "/api/v1/admin/bookings/"+id.String()+"/status",
				map[string]string{"status": "confirmed"}, map[string]string{"id": id.String()}))

			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestAdminBookingHandler_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc := new(mockAdminBookingUsecase)
	h := NewAdminBookingHandler(uc, validator.NewValidator())
	id := uuid.New()

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, newRequest(t, http.MethodPatch, "/", map[string]string{"status": "archived"}, map[string]string{"id": id.String()}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.UpdateStatus(rec, newRequest(t, http.MethodPatch, "/", map[string]string{"status": "confirmed"}, map[string]string{"id": "42"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid booking ID", decodeResponse(t, rec).Message)

	uc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
