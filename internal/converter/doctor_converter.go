package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:         doctor.ID,
		Name:       doctor.Name,
		Speciality: doctor.Speciality,
		Experience: doctor.Experience,
		ImageURL:   doctor.ImageURL,
		CreatedAt:  doctor.CreatedAt,
		UpdatedAt:  doctor.UpdatedAt,
	}
	if doctor.RegistrationNo != nil {
		response.RegistrationNo = *doctor.RegistrationNo
	}

	// Include schedules if preloaded
	if len(doctor.Schedules) > 0 {
		response.Schedules = SchedulesToResponses(doctor.Schedules)
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorToSummary returns nil when the relation was not loaded.
func DoctorToSummary(doctor *entity.Doctor) *dto.DoctorSummary {
	if doctor == nil || doctor.ID == uuid.Nil {
		return nil
	}
	return &dto.DoctorSummary{
		ID:         doctor.ID,
		Name:       doctor.Name,
		Speciality: doctor.Speciality,
	}
}
