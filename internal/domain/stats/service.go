package stats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"herdbook-go/internal/domain/animals"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Overview computes the current dashboard snapshot and a comparable snapshot
// as of the end of the previous calendar month, then renders the signed
// delta per metric. Ages in the prior snapshot are relative to the cutoff,
// not to now.
func (s *Service) Overview(ctx context.Context, farmID string) (*Overview, error) {
	now := s.now()

	herd, err := s.repo.HerdHealth(ctx, farmID, nil)
	if err != nil {
		return nil, err
	}
	current := buildSnapshot(herd, now)

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	cutoff := startOfMonth.AddDate(0, 0, -1)

	prevHerd, err := s.repo.HerdHealth(ctx, farmID, &cutoff)
	if err != nil {
		return nil, err
	}
	prior := buildSnapshot(prevHerd, cutoff)

	return &Overview{
		Current: current,
		Changes: Changes{
			Animals: formatDelta(current.TotalAnimals - prior.TotalAnimals),
			Age:     formatDelta(current.AverageAge - prior.AverageAge),
			Weight:  formatDelta(current.AverageWeight - prior.AverageWeight),
			Alerts:  formatDelta(current.HealthAlerts - prior.HealthAlerts),
		},
	}, nil
}

func buildSnapshot(herd []AnimalHealth, asOf time.Time) Snapshot {
	buckets := make(map[string]int, len(animals.AgeBuckets))
	ages := make([]float64, 0, len(herd))
	weights := make([]float64, 0, len(herd))
	alerts := 0

	for _, animal := range herd {
		months := animals.MonthsBetween(animal.BirthDate, asOf)
		ages = append(ages, months)
		buckets[animals.AgeBucket(months)]++

		if animal.LatestWeight != nil {
			weights = append(weights, *animal.LatestWeight)
		}

		status := animals.StatusHealthy
		if animal.LatestStatus != nil {
			status = *animal.LatestStatus
		}
		if status == animals.StatusSick || status == animals.StatusQuarantined {
			alerts++
		}
	}

	distribution := make([]BucketCount, 0, len(animals.AgeBuckets))
	for _, name := range animals.AgeBuckets {
		distribution = append(distribution, BucketCount{Name: name, Count: buckets[name]})
	}

	return Snapshot{
		TotalAnimals:    len(herd),
		AverageAge:      animals.RoundedAverage(ages),
		AverageWeight:   animals.RoundedAverage(weights),
		HealthAlerts:    alerts,
		AgeDistribution: distribution,
	}
}

func formatDelta(diff int) string {
	if diff > 0 {
		return fmt.Sprintf("+%d", diff)
	}
	return strconv.Itoa(diff)
}
