package repository

import (
	"doctor-discovery/internal/domain/entity"

	"github.com/lib/pq"
)

// SampleDoctors returns the bundled reference collection served when the
// database is unreachable. The same eight records are loaded into postgres
// by the seed migration, so a fresh database and the fallback path answer
// queries identically.
func SampleDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:              "doc-4xk9q2m7w1zr8t",
			Name:            "Dr. Rahul Sharma",
			Specialty:       "General Physician",
			Qualification:   "MBBS, MD (General Medicine)",
			Experience:      12,
			Languages:       pq.StringArray{"English", "Hindi"},
			Hospital:        "Apollo Hospitals",
			Location:        "Delhi",
			ConsultationFee: 800,
			Rating:          4.8,
			RatingCount:     245,
			Gender:          entity.GenderMale,
			Image:           "https://img.freepik.com/free-photo/doctor-with-his-arms-crossed-white-background_1368-5790.jpg",
			Availability:    entity.Availability{Online: true, InClinic: true, HomeVisit: false},
			AvailableDays:   pq.StringArray{entity.DayToday, entity.DayTomorrow, entity.DayWeekend},
			IsActive:        true,
		},
		{
			ID:              "doc-7fj3n8p5d2qx6v",
			Name:            "Dr. Priya Patel",
			Specialty:       "Internal Medicine",
			Qualification:   "MBBS, DNB (Internal Medicine)",
			Experience:      8,
			Languages:       pq.StringArray{"English", "Hindi", "Gujarati"},
			Hospital:        "Apollo Clinic",
			Location:        "Mumbai",
			ConsultationFee: 700,
			Rating:          4.6,
			RatingCount:     187,
			Gender:          entity.GenderFemale,
			Image:           "https://img.freepik.com/free-photo/medium-shot-smiley-doctor-with-coat_23-2148698867.jpg",
			Availability:    entity.Availability{Online: true, InClinic: true, HomeVisit: false},
			AvailableDays:   pq.StringArray{entity.DayToday, entity.DayTomorrow},
			IsActive:        true,
		},
		{
			ID:              "doc-2bw6t4r9k8mz3h",
			Name:            "Dr. Anand Kumar",
			Specialty:       "General Physician",
			Qualification:   "MBBS, MD (General Medicine)",
			Experience:      15,
			Languages:       pq.StringArray{"English", "Hindi", "Tamil"},
			Hospital:        "Apollo Hospitals",
			Location:        "Chennai",
			ConsultationFee: 900,
			Rating:          4.9,
			RatingCount:     320,
			Gender:          entity.GenderMale,
			Image:           "https://mysmartdoctor.in/image/314c8b7c9f591c2ac8d1127dc9bac3541721804706.jpg",
			Availability:    entity.Availability{Online: true, InClinic: true, HomeVisit: true},
			AvailableDays:   pq.StringArray{entity.DayToday, entity.DayWeekend},
			IsActive:        true,
		},
		{
			ID:              "doc-9sm1x7c3g5vn2k",
			Name:            "Dr. Sunita Reddy",
			Specialty:       "Internal Medicine",
			Qualification:   "MBBS, MD, DM (Infectious Diseases)",
			Experience:      10,
			Languages:       pq.StringArray{"English", "Telugu", "Hindi"},
			Hospital:        "Apollo Spectra",
			Location:        "Hyderabad",
			ConsultationFee: 1200,
			Rating:          4.7,
			RatingCount:     156,
			Gender:          entity.GenderFemale,
			Image:           "https://img.freepik.com/free-photo/medium-shot-smiley-doctor-with-coat_23-2148698867.jpg",
			Availability:    entity.Availability{Online: true, InClinic: true, HomeVisit: false},
			AvailableDays:   pq.StringArray{entity.DayTomorrow, entity.DayWeekend},
			IsActive:        true,
		},
		{
			ID:              "doc-5qh8z2j6b4tw9p",
			Name:            "Dr. Vikram Singh",
			Specialty:       "General Physician",
			Qualification:   "MBBS, MD (General Medicine)",
			Experience:      7,
			Languages:       pq.StringArray{"English", "Hindi", "Punjabi"},
			Hospital:        "Apollo Clinic",
			Location:        "Chandigarh",
			ConsultationFee: 600,
			Rating:          4.5,
			RatingCount:     98,
			Gender:          entity.GenderMale,
			Image:           "https://mysmartdoctor.in/image/314c8b7c9f591c2ac8d1127dc9bac3541721804706.jpg",
			Availability:    entity.Availability{Online: true, InClinic: false, HomeVisit: false},
			AvailableDays:   pq.StringArray{entity.DayToday, entity.DayTomorrow},
			IsActive:        true,
		},
		{
			ID:              "doc-1dn5v9y4f7rc8m",
			Name:            "Dr. Meera Iyer",
			Specialty:       "Internal Medicine",
			Qualification:   "MBBS, MD (Internal Medicine)",
			Experience:      9,
			Languages:       pq.StringArray{"English", "Malayalam", "Hindi"},
			Hospital:        "Apollo Hospitals",
			Location:        "Bangalore",
			ConsultationFee: 750,
			Rating:          4.7,
			RatingCount:     134,
			Gender:          entity.GenderFemale,
			Image:           "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcR7zAPTgZh14-u9GUDYGcPocxnKXY0kkZZ0Ig&s",
			Availability:    entity.Availability{Online: true, InClinic: true, HomeVisit: false},
			AvailableDays:   pq.StringArray{entity.DayToday, entity.DayWeekend},
			IsActive:        true,
		},
		{
			ID:              "doc-8tk2p6s1m9xj4w",
			Name:            "Dr. Rajiv Mehta",
			Specialty:       "General Physician",
			Qualification:   "MBBS, DNB (Family Medicine)",
			Experience:      11,
			Languages:       pq.StringArray{"English", "Hindi", "Marathi"},
			Hospital:        "Apollo Clinic",
			Location:        "Pune",
			ConsultationFee: 650,
			Rating:          4.6,
			RatingCount:     178,
			Gender:          entity.GenderMale,
			Image:           "https://img.freepik.com/free-photo/doctor-with-his-arms-crossed-white-background_1368-5790.jpg",
			Availability:    entity.Availability{Online: true, InClinic: true, HomeVisit: true},
			AvailableDays:   pq.StringArray{entity.DayTomorrow, entity.DayWeekend},
			IsActive:        true,
		},
		{
			ID:              "doc-6wr4g8h2n5kq7z",
			Name:            "Dr. Anjali Desai",
			Specialty:       "Internal Medicine",
			Qualification:   "MBBS, MD (General Medicine)",
			Experience:      6,
			Languages:       pq.StringArray{"English", "Gujarati", "Hindi"},
			Hospital:        "Apollo Spectra",
			Location:        "Ahmedabad",
			ConsultationFee: 550,
			Rating:          4.4,
			RatingCount:     87,
			Gender:          entity.GenderFemale,
			Image:           "https://img.freepik.com/free-photo/medium-shot-smiley-doctor-with-coat_23-2148698867.jpg",
			Availability:    entity.Availability{Online: true, InClinic: true, HomeVisit: false},
			AvailableDays:   pq.StringArray{entity.DayToday, entity.DayTomorrow},
			IsActive:        true,
		},
	}
}
