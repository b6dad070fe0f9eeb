package repository

import (
	"context"

	"doctor-discovery/internal/domain/entity"
	domainRepo "doctor-discovery/internal/domain/repository"
)

// memoryDoctorStore evaluates filters over a fixed in-memory collection.
// It backs the fallback path and treats its collection as read-only, so it
// is safe for concurrent requests.
type memoryDoctorStore struct {
	doctors []entity.Doctor
}

var _ domainRepo.DoctorStore = (*memoryDoctorStore)(nil)

func NewMemoryDoctorStore(doctors []entity.Doctor) domainRepo.DoctorStore {
	return &memoryDoctorStore{doctors: doctors}
}

func (s *memoryDoctorStore) FindPage(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	page, total := filter.EvaluateDoctors(s.doctors)
	return page, total, nil
}

func (s *memoryDoctorStore) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			doctor := s.doctors[i]
			return &doctor, nil
		}
	}
	return nil, nil
}

// Create fabricates persistence: the record is accepted but not retained,
// matching the availability-over-durability contract of the fallback path.
func (s *memoryDoctorStore) Create(ctx context.Context, doctor *entity.Doctor) error {
	return nil
}
