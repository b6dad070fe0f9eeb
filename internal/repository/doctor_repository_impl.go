package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"doctor-discovery/internal/domain/entity"
	domainRepo "doctor-discovery/internal/domain/repository"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// doctorRepository is the durable-store evaluation path. Filtering,
// ordering and pagination are pushed down to postgres so unmatched rows
// never leave the database.
type doctorRepository struct {
	db *gorm.DB
}

var _ domainRepo.DoctorStore = (*doctorRepository)(nil)

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorStore {
	return &doctorRepository{db: db}
}

// RunMigrations applies the embedded schema and seed migrations.
func RunMigrations(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (r *doctorRepository) FindPage(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&entity.Doctor{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var doctors []entity.Doctor
	err := query.
		Order(orderClause(filter.SortBy)).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}

	return doctors, total, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

// applyFilter mirrors DoctorFilter.Matches in SQL: one WHERE clause per
// constrained dimension, OR-groups inside a dimension. Band edges must stay
// in lockstep with the in-memory bands.
func applyFilter(query *gorm.DB, filter *entity.DoctorFilter) *gorm.DB {
	query = query.Where("is_active = ?", true)

	if len(filter.ConsultationType) > 0 {
		var conds []string
		for _, mode := range filter.ConsultationType {
			switch mode {
			case entity.ConsultationOnline:
				conds = append(conds, "(availability ->> 'online')::boolean")
			case entity.ConsultationInClinic:
				conds = append(conds, "(availability ->> 'inClinic')::boolean")
			case entity.ConsultationHomeVisit:
				conds = append(conds, "(availability ->> 'homeVisit')::boolean")
			}
		}
		if len(conds) > 0 {
			query = query.Where(strings.Join(conds, " OR "))
		}
	}

	if len(filter.Availability) > 0 {
		query = query.Where("available_days && ?", pq.Array(filter.Availability))
	}

	if len(filter.Gender) > 0 {
		query = query.Where("gender IN ?", filter.Gender)
	}

	if len(filter.Experience) > 0 {
		query = query.Where(bandClause("experience", filter.Experience, map[string]string{
			"0-5":  "experience >= 0 AND experience <= 5",
			"5-10": "experience > 5 AND experience <= 10",
			"10+":  "experience > 10",
		}))
	}

	if len(filter.FeesRange) > 0 {
		query = query.Where(bandClause("consultation_fee", filter.FeesRange, map[string]string{
			"0-500":    "consultation_fee >= 0 AND consultation_fee <= 500",
			"500-1000": "consultation_fee > 500 AND consultation_fee <= 1000",
			"1000+":    "consultation_fee > 1000",
		}))
	}

	if len(filter.Hospital) > 0 {
		query = query.Where("hospital IN ?", filter.Hospital)
	}

	return query
}

func bandClause(column string, tags []string, conds map[string]string) string {
	var parts []string
	for _, tag := range tags {
		if cond, ok := conds[tag]; ok {
			parts = append(parts, "("+cond+")")
		}
	}
	return strings.Join(parts, " OR ")
}

// orderClause maps a sort key to its ORDER BY expression. The trailing id
// tie-break must stay in lockstep with SortDoctors so both stores return
// identical page orderings for the same records.
func orderClause(sortBy string) string {
	switch sortBy {
	case entity.SortExperience:
		return "experience DESC, id ASC"
	case entity.SortFeesLowToHigh:
		return "consultation_fee ASC, id ASC"
	case entity.SortFeesHighToLow:
		return "consultation_fee DESC, id ASC"
	case entity.SortByAvailability:
		return "COALESCE(array_length(available_days, 1), 0) DESC, id ASC"
	default:
		return "rating DESC, experience DESC, id ASC"
	}
}
