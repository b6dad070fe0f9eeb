package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Gender values accepted for a doctor record
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Available-day tags a doctor can carry
const (
	DayToday    = "today"
	DayTomorrow = "tomorrow"
	DayWeekend  = "weekend"
)

// Availability holds the consultation capabilities of a doctor. The flags
// are independent; a doctor may have none of them set.
type Availability struct {
	Online    bool `json:"online"`
	InClinic  bool `json:"inClinic"`
	HomeVisit bool `json:"homeVisit"`
}

// Value serializes the availability flags to jsonb for postgres.
func (a Availability) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan deserializes the jsonb availability column.
func (a *Availability) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = Availability{}
		return nil
	default:
		return fmt.Errorf("unsupported availability column type %T", src)
	}
}

// Doctor represents a single practitioner in the catalog
type Doctor struct {
	ID              string         `gorm:"type:varchar(32);primaryKey" json:"id"`
	Name            string         `gorm:"type:varchar(150);not null" json:"name"`
	Specialty       string         `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Qualification   string         `gorm:"type:text;not null" json:"qualification"`
	Experience      int            `gorm:"not null" json:"experience"`
	Languages       pq.StringArray `gorm:"type:text[];not null" json:"languages"`
	Hospital        string         `gorm:"type:varchar(150);not null" json:"hospital"`
	Location        string         `gorm:"type:varchar(150);not null" json:"location"`
	ConsultationFee int            `gorm:"not null" json:"consultationFee"`
	Rating          float64        `gorm:"not null" json:"rating"`
	RatingCount     int            `gorm:"not null" json:"ratingCount"`
	Gender          string         `gorm:"type:varchar(10);not null" json:"gender"`
	Image           string         `gorm:"type:text" json:"image"`
	Availability    Availability   `gorm:"type:jsonb;not null" json:"availability"`
	AvailableDays   pq.StringArray `gorm:"type:text[];not null" json:"availableDays"`
	IsActive        bool           `gorm:"not null" json:"isActive"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (Doctor) TableName() string {
	return "doctors"
}
