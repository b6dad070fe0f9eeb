package repository

import (
	"context"
	"testing"

	"doctor-discovery/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func doctorRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "specialty", "experience", "hospital",
		"consultation_fee", "rating", "gender", "languages",
		"availability", "available_days", "is_active",
	})
}

func TestPostgresStorePushesFeeSortAndPageDown(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewDoctorRepository(db)

	filter := referenceFilter()
	filter.SortBy = entity.SortFeesLowToHigh
	filter.Limit = 3

	mock.ExpectQuery(`SELECT count\(\*\) FROM "doctors" WHERE is_active = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))

	mock.ExpectQuery(`SELECT \* FROM "doctors" WHERE is_active = \$1 ORDER BY consultation_fee ASC, id ASC LIMIT`).
		WillReturnRows(doctorRows().
			AddRow("doc-6wr4g8h2n5kq7z", "Dr. Anjali Desai", "Internal Medicine", 6, "Apollo Spectra",
				550, 4.4, "female", "{English,Gujarati,Hindi}",
				[]byte(`{"online":true,"inClinic":true,"homeVisit":false}`), "{today,tomorrow}", true).
			AddRow("doc-5qh8z2j6b4tw9p", "Dr. Vikram Singh", "General Physician", 7, "Apollo Clinic",
				600, 4.5, "male", "{English,Hindi,Punjabi}",
				[]byte(`{"online":true,"inClinic":false,"homeVisit":false}`), "{today,tomorrow}", true).
			AddRow("doc-8tk2p6s1m9xj4w", "Dr. Rajiv Mehta", "General Physician", 11, "Apollo Clinic",
				650, 4.6, "male", "{English,Hindi,Marathi}",
				[]byte(`{"online":true,"inClinic":true,"homeVisit":true}`), "{tomorrow,weekend}", true))

	page, total, err := store.FindPage(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	require.Len(t, page, 3)
	assert.Equal(t, 550, page[0].ConsultationFee)
	assert.True(t, page[0].Availability.Online)
	assert.Equal(t, []string{"English", "Gujarati", "Hindi"}, []string(page[0].Languages))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreBuildsDimensionClauses(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewDoctorRepository(db)

	filter := referenceFilter()
	filter.ConsultationType = []string{entity.ConsultationOnline, entity.ConsultationHomeVisit}
	filter.Availability = []string{entity.DayToday}
	filter.Gender = []string{entity.GenderFemale}
	filter.Experience = []string{"0-5", "10+"}
	filter.FeesRange = []string{"1000+"}
	filter.Hospital = []string{"Apollo Spectra"}

	clausePattern := `SELECT count\(\*\) FROM "doctors" WHERE is_active = \$1` +
		`.*\(availability ->> 'online'\)::boolean OR \(availability ->> 'homeVisit'\)::boolean` +
		`.*available_days && \$2` +
		`.*gender IN \(\$3\)` +
		`.*\(experience >= 0 AND experience <= 5\) OR \(experience > 10\)` +
		`.*\(consultation_fee > 1000\)` +
		`.*hospital IN \(\$4\)`

	mock.ExpectQuery(clausePattern).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT \* FROM "doctors" WHERE is_active = \$1`).
		WillReturnRows(doctorRows())

	page, total, err := store.FindPage(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, page)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreAvailabilitySortUsesDayCount(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewDoctorRepository(db)

	filter := referenceFilter()
	filter.SortBy = entity.SortByAvailability

	mock.ExpectQuery(`SELECT count\(\*\) FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ORDER BY COALESCE\(array_length\(available_days, 1\), 0\) DESC, id ASC`).
		WillReturnRows(doctorRows())

	_, _, err := store.FindPage(context.Background(), filter)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewDoctorRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "doctors" WHERE id = \$1`).
		WillReturnRows(doctorRows().
			AddRow("doc-4xk9q2m7w1zr8t", "Dr. Rahul Sharma", "General Physician", 12, "Apollo Hospitals",
				800, 4.8, "male", "{English,Hindi}",
				[]byte(`{"online":true,"inClinic":true,"homeVisit":false}`), "{today,tomorrow,weekend}", true))

	doctor, err := store.FindByID(context.Background(), "doc-4xk9q2m7w1zr8t")
	require.NoError(t, err)
	require.NotNil(t, doctor)
	assert.Equal(t, "Dr. Rahul Sharma", doctor.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewDoctorRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "doctors" WHERE id = \$1`).
		WillReturnRows(doctorRows())

	doctor, err := store.FindByID(context.Background(), "doc-missing")
	require.NoError(t, err)
	assert.Nil(t, doctor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreCreate(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewDoctorRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "doctors"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	doctors := SampleDoctors()
	err := store.Create(context.Background(), &doctors[0])
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderClauseMapping(t *testing.T) {
	cases := map[string]string{
		entity.SortRelevance:      "rating DESC, experience DESC, id ASC",
		entity.SortExperience:     "experience DESC, id ASC",
		entity.SortFeesLowToHigh:  "consultation_fee ASC, id ASC",
		entity.SortFeesHighToLow:  "consultation_fee DESC, id ASC",
		entity.SortByAvailability: "COALESCE(array_length(available_days, 1), 0) DESC, id ASC",
	}

	for sortBy, want := range cases {
		assert.Equal(t, want, orderClause(sortBy), "sortBy=%s", sortBy)
	}
}
