package animals

import (
	"math"
	"time"
)

// Ages use a fixed average month length rather than calendar months. The
// dashboard and the inventory table both depend on this exact approximation.
const avgDaysPerMonth = 30.44

// MonthsBetween returns the fractional number of average-length months
// between birthDate and asOf. Future birth dates yield negative values.
func MonthsBetween(birthDate, asOf time.Time) float64 {
	return asOf.Sub(birthDate).Hours() / (24 * avgDaysPerMonth)
}

// AgeInMonths is MonthsBetween floored to a whole month, the value shown in
// list rows and detail views.
func AgeInMonths(birthDate, asOf time.Time) int {
	return int(math.Floor(MonthsBetween(birthDate, asOf)))
}

var AgeBuckets = []string{
	"0-6 months",
	"7-12 months",
	"13-24 months",
	"25-36 months",
	"37+ months",
}

// AgeBucket classifies a fractional age into one of the five histogram
// buckets. Bounds are inclusive and checked in order, so exactly 6 months
// lands in the first bucket.
func AgeBucket(months float64) string {
	switch {
	case months <= 6:
		return AgeBuckets[0]
	case months <= 12:
		return AgeBuckets[1]
	case months <= 24:
		return AgeBuckets[2]
	case months <= 36:
		return AgeBuckets[3]
	default:
		return AgeBuckets[4]
	}
}

// CurrentStatus returns the status of the record with the greatest date, or
// StatusHealthy when the animal has no records. Input order does not matter.
func CurrentStatus(records []HealthRecord) string {
	status := StatusHealthy
	var latest time.Time
	for i, record := range records {
		if i == 0 || record.Date.After(latest) {
			latest = record.Date
			status = record.Status
		}
	}
	return status
}

// RoundedAverage is the arithmetic mean rounded to the nearest integer,
// 0 for empty input.
func RoundedAverage(values []float64) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return int(math.Round(sum / float64(len(values))))
}
