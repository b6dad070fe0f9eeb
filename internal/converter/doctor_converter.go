package converter

import (
	"doctor-discovery/internal/delivery/dto"
	"doctor-discovery/internal/domain/entity"
)

// Placeholder portraits used when a record carries no image. Deterministic
// per gender so the same record always renders the same card.
const (
	defaultMaleImage   = "https://img.freepik.com/free-photo/doctor-with-his-arms-crossed-white-background_1368-5790.jpg"
	defaultFemaleImage = "https://img.freepik.com/free-photo/medium-shot-smiley-doctor-with-coat_23-2148698867.jpg"
)

// DoctorToResponse converts a Doctor entity to its API representation.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	image := doctor.Image
	if image == "" {
		if doctor.Gender == entity.GenderFemale {
			image = defaultFemaleImage
		} else {
			image = defaultMaleImage
		}
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Specialty:       doctor.Specialty,
		Qualification:   doctor.Qualification,
		Experience:      doctor.Experience,
		Languages:       doctor.Languages,
		Hospital:        doctor.Hospital,
		Location:        doctor.Location,
		ConsultationFee: doctor.ConsultationFee,
		Rating:          doctor.Rating,
		RatingCount:     doctor.RatingCount,
		Gender:          doctor.Gender,
		Image:           image,
		Availability: dto.AvailabilityPayload{
			Online:    doctor.Availability.Online,
			InClinic:  doctor.Availability.InClinic,
			HomeVisit: doctor.Availability.HomeVisit,
		},
		AvailableDays: doctor.AvailableDays,
		IsActive:      doctor.IsActive,
	}
}

// DoctorsToResponses converts a page of Doctor entities to API records.
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
