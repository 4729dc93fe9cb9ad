package stats

import "time"

// AnimalHealth is one animal as seen by the statistics queries: birth date
// plus its most recent health record (as of the query's cutoff), nil fields
// when the animal has no usable record.
type AnimalHealth struct {
	AnimalID     string    `gorm:"column:animal_id"`
	BirthDate    time.Time `gorm:"column:birth_date"`
	LatestStatus *string   `gorm:"column:latest_status"`
	LatestWeight *float64  `gorm:"column:latest_weight"`
}

type BucketCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Snapshot is the dashboard's aggregate view of a herd at a point in time.
type Snapshot struct {
	TotalAnimals    int
	AverageAge      int
	AverageWeight   int
	HealthAlerts    int
	AgeDistribution []BucketCount
}

// Changes holds the signed month-over-month delta strings per metric.
type Changes struct {
	Animals string
	Age     string
	Weight  string
	Alerts  string
}

type Overview struct {
	Current Snapshot
	Changes Changes
}
