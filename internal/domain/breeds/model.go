package breeds

import "time"

// OtherBreed is the catch-all entry that must sort last in every breed
// listing regardless of name or count.
const OtherBreed = "Other"

type Breed struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// BreedCount is one row of the per-farm group-by used by the distribution.
type BreedCount struct {
	Name  string `gorm:"column:name"`
	Count int64  `gorm:"column:count"`
}

// DistributionRow is a breed's share of the farm herd.
type DistributionRow struct {
	Name       string
	Value      int64
	Percentage float64
}
