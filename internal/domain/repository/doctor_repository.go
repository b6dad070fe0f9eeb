package repository

import (
	"context"

	"doctor-discovery/internal/domain/entity"
)

// DoctorStore is the evaluation capability behind the listing endpoint.
// Two implementations exist: the postgres store, which pushes the filter
// down to the database, and the in-memory store over the bundled reference
// collection. Both must produce the same pages for the same data.
type DoctorStore interface {
	// FindPage returns one page of matching doctors plus the pre-pagination
	// match total.
	FindPage(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error)
	// FindByID returns the doctor with the given identifier, active or not,
	// or (nil, nil) when no such record exists.
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	// Create persists a new doctor record.
	Create(ctx context.Context, doctor *entity.Doctor) error
}
