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

func TestDoctorHandler_GetAllWithSpeciality(t *testing.T) {
	uc := new(mockDoctorUsecase)
	h := NewDoctorHandler(uc, validator.NewValidator())
	uc.On("GetAllDoctors", mock.Anything, "Cardiology").Return(&dto.DoctorListResponse{Total: 1}, nil)

	rec := httptest.NewRecorder()
	h.GetAllDoctors(rec, newRequest(t, http.MethodGet, "/api/v1/doctors?speciality=Cardiology", nil, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestDoctorHandler_CreateConflict(t *testing.T) {
	uc := new(mockDoctorUsecase)
	h := NewDoctorHandler(uc, validator.NewValidator())
	uc.On("CreateDoctor", mock.Anything, mock.Anything).Return(nil, usecase.ErrRegistrationExists)

	rec := httptest.NewRecorder()
	h.CreateDoctor(rec, newRequest(t, http.MethodPost, "/api/v1/admin/doctors",
		map[string]interface{}{"name": "Dr. Rao", "speciality": "Cardiology", "experience": 12, "registration_no": "MCI-1"}, nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDoctorHandler_Delete(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"missing", usecase.ErrDoctorNotFound, http.StatusNotFound},
		{"has bookings", usecase.ErrDoctorHasBookings, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := new(mockDoctorUsecase)
			h := NewDoctorHandler(uc, validator.NewValidator())
			id := uuid.New()
			uc.On("DeleteDoctor", mock.Anything, id).Return(tc.err)

			rec := httptest.NewRecorder()
			h.DeleteDoctor(rec, newRequest(t, http.MethodDelete, "/", nil, map[string]string{"id": id.String()}))

			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestDoctorHandler_GetInvalidID(t *testing.T) {
	h := NewDoctorHandler(new(mockDoctorUsecase), validator.NewValidator())

	rec := httptest.NewRecorder()
	h.GetDoctor(rec, newRequest(t, http.MethodGet, "/", nil, map[string]string{"id": "not-a-uuid"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
