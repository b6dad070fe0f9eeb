package handler

import (
	"encoding/json"
	"net/http"

	"doctor-discovery/internal/delivery/dto"
	"doctor-discovery/internal/domain/entity"
	"doctor-discovery/internal/usecase"
	"doctor-discovery/pkg/response"
	"doctor-discovery/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	catalogUsecase usecase.DoctorCatalogUsecase
	validator      *validator.CustomValidator
}

func NewDoctorHandler(catalogUsecase usecase.DoctorCatalogUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

// ListDoctors handles GET /api/doctors. Filter parameters may repeat for
// array semantics or appear once for scalar semantics.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	filter, errs := entity.ParseDoctorFilter(r.URL.Query())
	if len(errs) > 0 {
		response.ValidationError(w, "Invalid filter parameters", errs.Fields())
		return
	}

	result, err := h.catalogUsecase.ListDoctors(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// GetDoctor handles GET /api/doctors/{id}. The lookup is not scoped to
// active records.
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.catalogUsecase.GetDoctor(r.Context(), vars["id"])
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.JSON(w, http.StatusOK, doctor)
}

// CreateDoctor handles POST /api/doctors.
func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "Validation failed", h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.catalogUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to add doctor")
		return
	}

	response.Created(w, "Doctor added successfully", doctor)
}
