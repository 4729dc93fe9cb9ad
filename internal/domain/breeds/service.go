package breeds

import (
	"context"
	"sort"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all breeds sorted by name, with "Other" forced last.
func (s *Service) List(ctx context.Context) ([]Breed, error) {
	breeds, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(breeds, func(i, j int) bool {
		return lessByName(breeds[i].Name, breeds[j].Name)
	})
	return breeds, nil
}

// Distribution returns the farm's herd grouped by breed with the share of
// the total, sorted by count descending, "Other" last.
func (s *Service) Distribution(ctx context.Context, farmID string) ([]DistributionRow, error) {
	counts, err := s.repo.CountByBreed(ctx, farmID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, count := range counts {
		total += count.Count
	}

	rows := make([]DistributionRow, 0, len(counts))
	for _, count := range counts {
		percentage := 0.0
		if total > 0 {
			percentage = float64(count.Count) / float64(total) * 100
		}
		rows = append(rows, DistributionRow{
			Name:       count.Name,
			Value:      count.Count,
			Percentage: percentage,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return lessByCount(rows[i], rows[j])
	})
	return rows, nil
}

func lessByName(a, b string) bool {
	if a == OtherBreed {
		return false
	}
	if b == OtherBreed {
		return true
	}
	return a < b
}

func lessByCount(a, b DistributionRow) bool {
	if a.Name == OtherBreed {
		return false
	}
	if b.Name == OtherBreed {
		return true
	}
	return a.Value > b.Value
}
