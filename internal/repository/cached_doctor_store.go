package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"doctor-discovery/internal/domain/entity"
	domainRepo "doctor-discovery/internal/domain/repository"
)

// cachedDoctorStore decorates a DoctorStore with cache-aside reads for
// single-record lookups. Listing pages stay uncached so filter results
// always reflect the store. Cache failures are ignored; the inner store is
// the source of truth.
type cachedDoctorStore struct {
	inner domainRepo.DoctorStore
	cache domainRepo.Cache
	ttl   time.Duration
}

var _ domainRepo.DoctorStore = (*cachedDoctorStore)(nil)

func NewCachedDoctorStore(inner domainRepo.DoctorStore, cache domainRepo.Cache, ttl time.Duration) domainRepo.DoctorStore {
	return &cachedDoctorStore{inner: inner, cache: cache, ttl: ttl}
}

func doctorCacheKey(id string) string {
	return fmt.Sprintf("doctor:%s", id)
}

func (s *cachedDoctorStore) FindPage(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	return s.inner.FindPage(ctx, filter)
}

func (s *cachedDoctorStore) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	key := doctorCacheKey(id)

	if data, err := s.cache.Get(ctx, key); err == nil {
		var doctor entity.Doctor
		if err := json.Unmarshal(data, &doctor); err == nil {
			return &doctor, nil
		}
	}

	doctor, err := s.inner.FindByID(ctx, id)
	if err != nil || doctor == nil {
		return doctor, err
	}

	if data, err := json.Marshal(doctor); err == nil {
		_ = s.cache.Set(ctx, key, data, s.ttl)
	}

	return doctor, nil
}

func (s *cachedDoctorStore) Create(ctx context.Context, doctor *entity.Doctor) error {
	return s.inner.Create(ctx, doctor)
}
