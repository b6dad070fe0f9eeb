package entity

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Consultation modes accepted by the consultationType dimension
const (
	ConsultationOnline    = "online"
	ConsultationInClinic  = "in-clinic"
	ConsultationHomeVisit = "home-visit"
)

// Sort keys accepted by the sortBy parameter
const (
	SortRelevance      = "relevance"
	SortExperience     = "experience"
	SortFeesLowToHigh  = "fees-low-to-high"
	SortFeesHighToLow  = "fees-high-to-low"
	SortByAvailability = "availability"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// FilterErrorKind classifies a filter validation failure.
type FilterErrorKind string

const (
	InvalidFilterValue FilterErrorKind = "invalid_filter_value"
	InvalidPagination  FilterErrorKind = "invalid_pagination"
	InvalidSortKey     FilterErrorKind = "invalid_sort_key"
)

// FilterError describes a single rejected filter parameter.
type FilterError struct {
	Kind    FilterErrorKind
	Field   string
	Message string
}

func (e FilterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FilterErrors aggregates every violation found while normalizing a
// request, so the caller sees all of them at once instead of the first.
type FilterErrors []FilterError

func (e FilterErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the violations keyed by parameter name, in the shape the
// HTTP layer reports back.
func (e FilterErrors) Fields() map[string]string {
	fields := make(map[string]string, len(e))
	for _, fe := range e {
		fields[fe.Field] = fe.Message
	}
	return fields
}

// DoctorFilter is a normalized, validated description of a listing query.
// An empty dimension imposes no constraint.
type DoctorFilter struct {
	ConsultationType []string
	Availability     []string
	Gender           []string
	Experience       []string
	FeesRange        []string
	Hospital         []string
	Page             int
	Limit            int
	SortBy           string
}

var (
	consultationTypeValues = []string{ConsultationOnline, ConsultationInClinic, ConsultationHomeVisit}
	availableDayValues     = []string{DayToday, DayTomorrow, DayWeekend}
	genderValues           = []string{GenderMale, GenderFemale}
	experienceBandValues   = []string{"0-5", "5-10", "10+"}
	feesBandValues         = []string{"0-500", "500-1000", "1000+"}
	sortByValues           = []string{SortRelevance, SortExperience, SortFeesLowToHigh, SortFeesHighToLow, SortByAvailability}
)

// ParseDoctorFilter normalizes raw query parameters into a DoctorFilter.
// Scalar values are coerced to one-element sets. Unknown enum values are
// rejected rather than dropped. The violations come back as a concrete
// FilterErrors slice, empty on success.
func ParseDoctorFilter(values url.Values) (*DoctorFilter, FilterErrors) {
	var errs FilterErrors

	filter := &DoctorFilter{
		ConsultationType: enumSet(values, "consultationType", consultationTypeValues, &errs),
		Availability:     enumSet(values, "availability", availableDayValues, &errs),
		Gender:           enumSet(values, "gender", genderValues, &errs),
		Experience:       enumSet(values, "experience", experienceBandValues, &errs),
		FeesRange:        enumSet(values, "feesRange", feesBandValues, &errs),
		Hospital:         stringSet(values["hospital"]),
		Page:             boundedInt(values.Get("page"), "page", DefaultPage, 1, 0, &errs),
		Limit:            boundedInt(values.Get("limit"), "limit", DefaultLimit, 1, MaxLimit, &errs),
	}

	filter.SortBy = values.Get("sortBy")
	if filter.SortBy == "" {
		filter.SortBy = SortRelevance
	} else if !contains(sortByValues, filter.SortBy) {
		errs = append(errs, FilterError{
			Kind:    InvalidSortKey,
			Field:   "sortBy",
			Message: fmt.Sprintf("must be one of %s", strings.Join(sortByValues, ", ")),
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return filter, nil
}

func enumSet(values url.Values, field string, allowed []string, errs *FilterErrors) []string {
	set := stringSet(values[field])
	for _, v := range set {
		if !contains(allowed, v) {
			*errs = append(*errs, FilterError{
				Kind:    InvalidFilterValue,
				Field:   field,
				Message: fmt.Sprintf("invalid value %q, must be one of %s", v, strings.Join(allowed, ", ")),
			})
		}
	}
	return set
}

func stringSet(raw []string) []string {
	set := make([]string, 0, len(raw))
	for _, v := range raw {
		if v != "" {
			set = append(set, v)
		}
	}
	return set
}

func boundedInt(raw, field string, def, min, max int, errs *FilterErrors) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || (max > 0 && n > max) {
		msg := fmt.Sprintf("must be an integer >= %d", min)
		if max > 0 {
			msg = fmt.Sprintf("must be an integer between %d and %d", min, max)
		}
		*errs = append(*errs, FilterError{Kind: InvalidPagination, Field: field, Message: msg})
		return def
	}
	return n
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// band is a half-open numeric bucket: a value belongs when gt < v <= lte.
// The shared lower-edge exclusivity keeps the bands a partition (5 years
// belongs to "0-5", a 500 fee to "0-500").
type band struct {
	gt  int
	lte int
}

func (b band) matches(v int) bool {
	return v > b.gt && v <= b.lte
}

const unbounded = int(^uint(0) >> 1)

var experienceBands = map[string]band{
	"0-5":  {gt: -1, lte: 5},
	"5-10": {gt: 5, lte: 10},
	"10+":  {gt: 10, lte: unbounded},
}

var feesBands = map[string]band{
	"0-500":    {gt: -1, lte: 500},
	"500-1000": {gt: 500, lte: 1000},
	"1000+":    {gt: 1000, lte: unbounded},
}

type doctorPredicate func(*Doctor) bool

// predicates folds each constrained dimension into an independent predicate.
// Values within a dimension combine with OR; the dimensions themselves
// combine with AND. The inactive-record exclusion is always included.
func (f *DoctorFilter) predicates() []doctorPredicate {
	preds := []doctorPredicate{
		func(d *Doctor) bool { return d.IsActive },
	}

	if len(f.ConsultationType) > 0 {
		modes := f.ConsultationType
		preds = append(preds, func(d *Doctor) bool {
			for _, mode := range modes {
				switch mode {
				case ConsultationOnline:
					if d.Availability.Online {
						return true
					}
				case ConsultationInClinic:
					if d.Availability.InClinic {
						return true
					}
				case ConsultationHomeVisit:
					if d.Availability.HomeVisit {
						return true
					}
				}
			}
			return false
		})
	}

	if len(f.Availability) > 0 {
		days := f.Availability
		preds = append(preds, func(d *Doctor) bool {
			for _, day := range d.AvailableDays {
				if contains(days, day) {
					return true
				}
			}
			return false
		})
	}

	if len(f.Gender) > 0 {
		genders := f.Gender
		preds = append(preds, func(d *Doctor) bool { return contains(genders, d.Gender) })
	}

	if len(f.Experience) > 0 {
		tags := f.Experience
		preds = append(preds, func(d *Doctor) bool { return anyBandMatches(experienceBands, tags, d.Experience) })
	}

	if len(f.FeesRange) > 0 {
		tags := f.FeesRange
		preds = append(preds, func(d *Doctor) bool { return anyBandMatches(feesBands, tags, d.ConsultationFee) })
	}

	if len(f.Hospital) > 0 {
		hospitals := f.Hospital
		preds = append(preds, func(d *Doctor) bool { return contains(hospitals, d.Hospital) })
	}

	return preds
}

func anyBandMatches(bands map[string]band, tags []string, v int) bool {
	for _, tag := range tags {
		if b, ok := bands[tag]; ok && b.matches(v) {
			return true
		}
	}
	return false
}

// Matches reports whether a record satisfies every constrained dimension.
func (f *DoctorFilter) Matches(d *Doctor) bool {
	for _, pred := range f.predicates() {
		if !pred(d) {
			return false
		}
	}
	return true
}

// SortDoctors orders the matched set in place according to the sort key.
// Equal keys fall back to record ID ascending, the same tie-break the
// durable store puts in its ORDER BY, so both execution strategies return
// identical page orderings.
func (f *DoctorFilter) SortDoctors(doctors []Doctor) {
	var less func(a, b *Doctor) bool

	switch f.SortBy {
	case SortExperience:
		less = func(a, b *Doctor) bool { return a.Experience > b.Experience }
	case SortFeesLowToHigh:
		less = func(a, b *Doctor) bool { return a.ConsultationFee < b.ConsultationFee }
	case SortFeesHighToLow:
		less = func(a, b *Doctor) bool { return a.ConsultationFee > b.ConsultationFee }
	case SortByAvailability:
		less = func(a, b *Doctor) bool { return len(a.AvailableDays) > len(b.AvailableDays) }
	default: // relevance: rating desc, then experience desc
		less = func(a, b *Doctor) bool {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return a.Experience > b.Experience
		}
	}

	sort.Slice(doctors, func(i, j int) bool {
		a, b := &doctors[i], &doctors[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.ID < b.ID
	})
}

// PageSlice cuts the [(page-1)*limit, page*limit) window out of the sorted
// matches. A window past the end yields an empty slice, never an error.
func (f *DoctorFilter) PageSlice(doctors []Doctor) []Doctor {
	start := (f.Page - 1) * f.Limit
	if start >= len(doctors) {
		return []Doctor{}
	}
	end := start + f.Limit
	if end > len(doctors) {
		end = len(doctors)
	}
	return doctors[start:end]
}

// EvaluateDoctors runs the full in-memory query pipeline over a record
// collection: filter, stable sort, paginate. It is a pure function of its
// inputs and never mutates the input slice.
func (f *DoctorFilter) EvaluateDoctors(doctors []Doctor) ([]Doctor, int64) {
	matched := make([]Doctor, 0, len(doctors))
	for i := range doctors {
		if f.Matches(&doctors[i]) {
			matched = append(matched, doctors[i])
		}
	}
	f.SortDoctors(matched)
	return f.PageSlice(matched), int64(len(matched))
}

// TotalPages computes the page count for a match total under this filter's
// limit.
func (f *DoctorFilter) TotalPages(total int64) int {
	return int((total + int64(f.Limit) - 1) / int64(f.Limit))
}
