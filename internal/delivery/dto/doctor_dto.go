package dto

// Request DTOs

type AvailabilityPayload struct {
	Online    bool `json:"online"`
	InClinic  bool `json:"inClinic"`
	HomeVisit bool `json:"homeVisit"`
}

// CreateDoctorRequest is the record shape minus the server-assigned fields
// (id, rating, ratingCount, isActive).
type CreateDoctorRequest struct {
	Name            string              `json:"name" validate:"required,min=3"`
	Specialty       string              `json:"specialty" validate:"required,min=2"`
	Qualification   string              `json:"qualification" validate:"required,min=2"`
	Experience      *int                `json:"experience" validate:"required,gte=0"`
	Languages       []string            `json:"languages" validate:"required,min=1,dive,required"`
	Hospital        string              `json:"hospital" validate:"required,min=2"`
	Location        string              `json:"location" validate:"required,min=2"`
	ConsultationFee *int                `json:"consultationFee" validate:"required,gte=0"`
	Gender          string              `json:"gender" validate:"required,oneof=male female"`
	Image           string              `json:"image" validate:"omitempty,url"`
	Availability    AvailabilityPayload `json:"availability"`
	AvailableDays   []string            `json:"availableDays" validate:"required,min=1,dive,oneof=today tomorrow weekend"`
}

// Response DTOs

type DoctorResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Specialty       string              `json:"specialty"`
	Qualification   string              `json:"qualification"`
	Experience      int                 `json:"experience"`
	Languages       []string            `json:"languages"`
	Hospital        string              `json:"hospital"`
	Location        string              `json:"location"`
	ConsultationFee int                 `json:"consultationFee"`
	Rating          float64             `json:"rating"`
	RatingCount     int                 `json:"ratingCount"`
	Gender          string              `json:"gender"`
	Image           string              `json:"image"`
	Availability    AvailabilityPayload `json:"availability"`
	AvailableDays   []string            `json:"availableDays"`
	IsActive        bool                `json:"isActive"`
}

// ListMeta carries the pagination envelope of a listing response.
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type DoctorListResponse struct {
	Data []DoctorResponse `json:"data"`
	Meta ListMeta         `json:"meta"`
}
