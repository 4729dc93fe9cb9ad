package animals

import (
	"time"

	"gorm.io/gorm"
)

const (
	SexMale   = "MALE"
	SexFemale = "FEMALE"

	StatusHealthy     = "HEALTHY"
	StatusSick        = "SICK"
	StatusQuarantined = "QUARANTINED"
)

type Animal struct {
	ID        string         `gorm:"type:uuid;primaryKey"`
	FarmID    string         `gorm:"type:uuid;index;not null"`
	BreedID   string         `gorm:"type:uuid;index;not null"`
	Name      string         `gorm:"not null"`
	Sex       string         `gorm:"type:varchar(6);not null"`
	BirthDate time.Time      `gorm:"type:date;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type HealthRecord struct {
	ID       string    `gorm:"type:uuid;primaryKey"`
	AnimalID string    `gorm:"type:uuid;index;not null"`
	Date     time.Time `gorm:"not null"`
	Status   string    `gorm:"type:varchar(16);not null"`
	Weight   *float64  `gorm:"type:numeric(8,2)"`
	Notes    *string   `gorm:"type:text"`
}

// ListFilter carries the raw query parameters of the inventory list.
type ListFilter struct {
	Page         int
	Limit        int
	Search       string
	BreedID      string
	HealthStatus string
}

// Query is the repository-level filter, produced after the status index pass
// resolved the derived health-status filter into a concrete id set.
type Query struct {
	Search      string
	BreedID     string
	IDs         []string
	FilterByIDs bool
	Offset      int
	Limit       int
}

// Row is one animal as read by the list query: stored columns plus the
// joined breed name and the status of the most recent health record.
type Row struct {
	ID           string
	Name         string
	Sex          string
	BirthDate    time.Time
	BreedName    string  `gorm:"column:breed_name"`
	LatestStatus *string `gorm:"column:latest_status"`
}

// StatusEntry is one row of the status index: an animal and the status of
// its most recent health record, nil when it has none.
type StatusEntry struct {
	AnimalID     string  `gorm:"column:animal_id"`
	LatestStatus *string `gorm:"column:latest_status"`
}

type ListItem struct {
	ID        string
	Name      string
	Breed     string
	Age       int
	Status    string
	BirthDate time.Time
	Sex       string
}

type Page struct {
	Items []ListItem
	Total int64
	Pages int
	Page  int
	Limit int
}

// Detail is an animal with its breed name and full health history, records
// ordered by date descending.
type Detail struct {
	Animal
	BreedName string
	Records   []HealthRecord
}

type CreateInput struct {
	FarmID    string
	Name      string
	BirthDate time.Time
	Sex       string
	BreedID   string
	Weight    *float64
	Notes     *string
}

type UpdateInput struct {
	ID           string
	FarmID       string
	Name         string
	BirthDate    time.Time
	BreedID      string
	Sex          string
	HealthStatus string
	Weight       *float64
	Notes        *string
}
