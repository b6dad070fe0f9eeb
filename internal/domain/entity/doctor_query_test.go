package entity

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultFilter() *DoctorFilter {
	return &DoctorFilter{Page: DefaultPage, Limit: DefaultLimit, SortBy: SortRelevance}
}

func fixtureDoctors() []Doctor {
	return []Doctor{
		{
			ID: "doc-a", Name: "A", Experience: 12, ConsultationFee: 800, Rating: 4.8,
			Gender: GenderMale, Hospital: "Apollo Hospitals",
			Availability:  Availability{Online: true, InClinic: true},
			AvailableDays: pq.StringArray{DayToday, DayTomorrow, DayWeekend},
			IsActive:      true,
		},
		{
			ID: "doc-b", Name: "B", Experience: 8, ConsultationFee: 700, Rating: 4.6,
			Gender: GenderFemale, Hospital: "Apollo Clinic",
			Availability:  Availability{Online: true, InClinic: true},
			AvailableDays: pq.StringArray{DayToday, DayTomorrow},
			IsActive:      true,
		},
		{
			ID: "doc-c", Name: "C", Experience: 15, ConsultationFee: 900, Rating: 4.9,
			Gender: GenderMale, Hospital: "Apollo Hospitals",
			Availability:  Availability{Online: true, InClinic: true, HomeVisit: true},
			AvailableDays: pq.StringArray{DayToday, DayWeekend},
			IsActive:      true,
		},
		{
			ID: "doc-d", Name: "D", Experience: 10, ConsultationFee: 1200, Rating: 4.7,
			Gender: GenderFemale, Hospital: "Apollo Spectra",
			Availability:  Availability{Online: true, InClinic: true},
			AvailableDays: pq.StringArray{DayTomorrow, DayWeekend},
			IsActive:      true,
		},
		{
			ID: "doc-e", Name: "E", Experience: 5, ConsultationFee: 500, Rating: 4.2,
			Gender: GenderMale, Hospital: "Apollo Clinic",
			Availability:  Availability{HomeVisit: true},
			AvailableDays: pq.StringArray{DayWeekend},
			IsActive:      true,
		},
		{
			ID: "doc-f", Name: "F", Experience: 3, ConsultationFee: 300, Rating: 4.0,
			Gender: GenderFemale, Hospital: "Apollo Spectra",
			Availability:  Availability{Online: true},
			AvailableDays: pq.StringArray{},
			IsActive:      true,
		},
		{
			ID: "doc-g", Name: "G (inactive)", Experience: 20, ConsultationFee: 100, Rating: 5.0,
			Gender: GenderMale, Hospital: "Apollo Hospitals",
			Availability:  Availability{Online: true, InClinic: true, HomeVisit: true},
			AvailableDays: pq.StringArray{DayToday, DayTomorrow, DayWeekend},
			IsActive:      false,
		},
	}
}

func TestConsultationTypePredicate(t *testing.T) {
	filter := defaultFilter()
	filter.ConsultationType = []string{ConsultationHomeVisit}

	_, total := filter.EvaluateDoctors(fixtureDoctors())
	assert.Equal(t, int64(2), total) // doc-c and doc-e; doc-g is inactive

	// OR within the dimension widens the match
	filter.ConsultationType = []string{ConsultationHomeVisit, ConsultationInClinic}
	_, total = filter.EvaluateDoctors(fixtureDoctors())
	assert.Equal(t, int64(5), total)
}

func TestAvailabilityDaysPredicate(t *testing.T) {
	filter := defaultFilter()
	filter.Availability = []string{DayToday}

	page, total := filter.EvaluateDoctors(fixtureDoctors())
	assert.Equal(t, int64(3), total)
	for _, d := range page {
		assert.Contains(t, []string(d.AvailableDays), DayToday)
	}

	// a record with no day tags never matches a day constraint
	filter.Availability = []string{DayToday, DayTomorrow, DayWeekend}
	_, total = filter.EvaluateDoctors(fixtureDoctors())
	assert.Equal(t, int64(5), total) // all active except doc-f
}

func TestGenderPredicate(t *testing.T) {
	filter := defaultFilter()
	filter.Gender = []string{GenderFemale}

	page, total := filter.EvaluateDoctors(fixtureDoctors())
	assert.Equal(t, int64(3), total)
	for _, d := range page {
		assert.Equal(t, GenderFemale, d.Gender)
	}
}

func TestHospitalPredicateExactMatch(t *testing.T) {
	filter := defaultFilter()
	filter.Hospital = []string{"Apollo Clinic"}

	_, total := filter.EvaluateDoctors(fixtureDoctors())
	assert.Equal(t, int64(2), total)

	// case-sensitive, no normalization
	filter.Hospital = []string{"apollo clinic"}
	_, total = filter.EvaluateDoctors(fixtureDoctors())
	assert.Equal(t, int64(0), total)
}

func TestExperienceBandEdges(t *testing.T) {
	cases := []struct {
		years int
		band  string
	}{
		{0, "0-5"},
		{5, "0-5"},
		{6, "5-10"},
		{10, "5-10"},
		{11, "10+"},
	}

	for _, tc := range cases {
		doctor := Doctor{ID: "doc-x", Experience: tc.years, IsActive: true}
		for _, tag := range []string{"0-5", "5-10", "10+"} {
			filter := defaultFilter()
			filter.Experience = []string{tag}
			matched := filter.Matches(&doctor)
			if tag == tc.band {
				assert.True(t, matched, "experience %d should match band %s", tc.years, tag)
			} else {
				assert.False(t, matched, "experience %d should not match band %s", tc.years, tag)
			}
		}
	}
}

// Requesting all three bands together must match every non-negative value
// exactly once: the bands partition the axis.
func TestExperienceBandPartition(t *testing.T) {
	doctors := make([]Doctor, 0, 5)
	for _, years := range []int{0, 5, 6, 10, 11} {
		doctors = append(doctors, Doctor{ID: "doc-x", Experience: years, IsActive: true})
	}

	filter := defaultFilter()
	filter.Experience = []string{"0-5", "5-10", "10+"}
	_, total := filter.EvaluateDoctors(doctors)
	assert.Equal(t, int64(len(doctors)), total)
}

func TestFeesBandEdges(t *testing.T) {
	cases := []struct {
		fee  int
		band string
	}{
		{0, "0-500"},
		{500, "0-500"},
		{501, "500-1000"},
		{1000, "500-1000"},
		{1001, "1000+"},
	}

	for _, tc := range cases {
		doctor := Doctor{ID: "doc-x", ConsultationFee: tc.fee, IsActive: true}
		for _, tag := range []string{"0-500", "500-1000", "1000+"} {
			filter := defaultFilter()
			filter.FeesRange = []string{tag}
			matched := filter.Matches(&doctor)
			if tag == tc.band {
				assert.True(t, matched, "fee %d should match band %s", tc.fee, tag)
			} else {
				assert.False(t, matched, "fee %d should not match band %s", tc.fee, tag)
			}
		}
	}
}

func TestInactiveNeverListed(t *testing.T) {
	// even a filter the inactive record would otherwise satisfy perfectly
	filter := defaultFilter()
	filter.ConsultationType = []string{ConsultationOnline}
	filter.Gender = []string{GenderMale}
	filter.Experience = []string{"10+"}

	page, _ := filter.EvaluateDoctors(fixtureDoctors())
	for _, d := range page {
		assert.NotEqual(t, "doc-g", d.ID)
		assert.True(t, d.IsActive)
	}
}

// Adding a constrained dimension can only shrink the match set.
func TestFilterMonotonicity(t *testing.T) {
	doctors := fixtureDoctors()

	base := defaultFilter()
	_, baseTotal := base.EvaluateDoctors(doctors)

	narrowings := []*DoctorFilter{
		{Page: 1, Limit: 10, SortBy: SortRelevance, Gender: []string{GenderFemale}},
		{Page: 1, Limit: 10, SortBy: SortRelevance, Gender: []string{GenderFemale}, Experience: []string{"5-10"}},
		{Page: 1, Limit: 10, SortBy: SortRelevance, Gender: []string{GenderFemale}, Experience: []string{"5-10"}, FeesRange: []string{"500-1000"}},
		{Page: 1, Limit: 10, SortBy: SortRelevance, Gender: []string{GenderFemale}, Experience: []string{"5-10"}, FeesRange: []string{"500-1000"}, Hospital: []string{"Apollo Clinic"}},
	}

	prev := baseTotal
	for _, narrower := range narrowings {
		_, total := narrower.EvaluateDoctors(doctors)
		assert.LessOrEqual(t, total, prev)
		prev = total
	}
}

func TestSortOrders(t *testing.T) {
	doctors := fixtureDoctors()

	t.Run("relevance", func(t *testing.T) {
		filter := defaultFilter()
		page, _ := filter.EvaluateDoctors(doctors)
		require.NotEmpty(t, page)
		for i := 1; i < len(page); i++ {
			if page[i-1].Rating == page[i].Rating {
				assert.GreaterOrEqual(t, page[i-1].Experience, page[i].Experience)
			} else {
				assert.Greater(t, page[i-1].Rating, page[i].Rating)
			}
		}
	})

	t.Run("experience", func(t *testing.T) {
		filter := defaultFilter()
		filter.SortBy = SortExperience
		page, _ := filter.EvaluateDoctors(doctors)
		for i := 1; i < len(page); i++ {
			assert.GreaterOrEqual(t, page[i-1].Experience, page[i].Experience)
		}
	})

	t.Run("fees-low-to-high", func(t *testing.T) {
		filter := defaultFilter()
		filter.SortBy = SortFeesLowToHigh
		page, _ := filter.EvaluateDoctors(doctors)
		for i := 1; i < len(page); i++ {
			assert.LessOrEqual(t, page[i-1].ConsultationFee, page[i].ConsultationFee)
		}
	})

	t.Run("fees-high-to-low", func(t *testing.T) {
		filter := defaultFilter()
		filter.SortBy = SortFeesHighToLow
		page, _ := filter.EvaluateDoctors(doctors)
		for i := 1; i < len(page); i++ {
			assert.GreaterOrEqual(t, page[i-1].ConsultationFee, page[i].ConsultationFee)
		}
	})

	t.Run("availability", func(t *testing.T) {
		filter := defaultFilter()
		filter.SortBy = SortByAvailability
		page, _ := filter.EvaluateDoctors(doctors)
		for i := 1; i < len(page); i++ {
			assert.GreaterOrEqual(t, len(page[i-1].AvailableDays), len(page[i].AvailableDays))
		}
	})
}

// Ties must order by record ID ascending regardless of input order, the
// same tie-break the durable store's ORDER BY applies.
func TestSortTiesBreakOnRecordID(t *testing.T) {
	doctors := []Doctor{
		{ID: "doc-z", ConsultationFee: 500, AvailableDays: pq.StringArray{DayToday}, IsActive: true},
		{ID: "doc-m", ConsultationFee: 500, AvailableDays: pq.StringArray{DayWeekend}, IsActive: true},
		{ID: "doc-a", ConsultationFee: 500, AvailableDays: pq.StringArray{DayTomorrow}, IsActive: true},
	}

	for _, sortBy := range []string{SortRelevance, SortExperience, SortFeesLowToHigh, SortFeesHighToLow, SortByAvailability} {
		filter := defaultFilter()
		filter.SortBy = sortBy

		page, _ := filter.EvaluateDoctors(doctors)
		require.Len(t, page, 3, "sortBy=%s", sortBy)

		ids := []string{page[0].ID, page[1].ID, page[2].ID}
		assert.Equal(t, []string{"doc-a", "doc-m", "doc-z"}, ids, "sortBy=%s", sortBy)
	}
}

func TestSortStability(t *testing.T) {
	doctors := fixtureDoctors()
	filter := defaultFilter()
	filter.SortBy = SortByAvailability // several ties on day count

	first, firstTotal := filter.EvaluateDoctors(doctors)
	second, secondTotal := filter.EvaluateDoctors(doctors)

	assert.Equal(t, firstTotal, secondTotal)
	assert.Equal(t, first, second)
}

func TestPaginationWindow(t *testing.T) {
	doctors := fixtureDoctors()

	filter := defaultFilter()
	filter.Limit = 2

	filter.Page = 1
	page, total := filter.EvaluateDoctors(doctors)
	assert.Equal(t, int64(6), total)
	assert.Len(t, page, 2)

	filter.Page = 3
	page, _ = filter.EvaluateDoctors(doctors)
	assert.Len(t, page, 2)

	// past the last page: empty data, total unchanged, no error
	filter.Page = 9
	page, total = filter.EvaluateDoctors(doctors)
	assert.Empty(t, page)
	assert.Equal(t, int64(6), total)
}

// Concatenating every page reproduces the full sorted match set exactly
// once, in order.
func TestPaginationCompleteness(t *testing.T) {
	doctors := fixtureDoctors()

	full := defaultFilter()
	full.SortBy = SortFeesLowToHigh
	full.Limit = 100
	all, total := full.EvaluateDoctors(doctors)

	paged := defaultFilter()
	paged.SortBy = SortFeesLowToHigh
	paged.Limit = 2

	var collected []Doctor
	for page := 1; page <= paged.TotalPages(total); page++ {
		paged.Page = page
		chunk, chunkTotal := paged.EvaluateDoctors(doctors)
		assert.Equal(t, total, chunkTotal)
		collected = append(collected, chunk...)
	}

	assert.Equal(t, all, collected)
}

func TestTotalPages(t *testing.T) {
	filter := defaultFilter()

	filter.Limit = 10
	assert.Equal(t, 1, filter.TotalPages(8))
	assert.Equal(t, 0, filter.TotalPages(0))

	filter.Limit = 3
	assert.Equal(t, 3, filter.TotalPages(8))
	assert.Equal(t, 3, filter.TotalPages(9))
	assert.Equal(t, 4, filter.TotalPages(10))
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	doctors := fixtureDoctors()
	originalIDs := make([]string, len(doctors))
	for i, d := range doctors {
		originalIDs[i] = d.ID
	}

	filter := defaultFilter()
	filter.SortBy = SortFeesHighToLow
	filter.EvaluateDoctors(doctors)

	for i, d := range doctors {
		assert.Equal(t, originalIDs[i], d.ID)
	}
}
