package stats

import (
	"context"
	"testing"
	"time"

	"herdbook-go/internal/domain/animals"
)

type fakeStatsRepo struct {
	current []AnimalHealth
	prior   []AnimalHealth
	cutoffs []time.Time
}

func (r *fakeStatsRepo) HerdHealth(ctx context.Context, farmID string, asOf *time.Time) ([]AnimalHealth, error) {
	if asOf == nil {
		return r.current, nil
	}
	r.cutoffs = append(r.cutoffs, *asOf)
	return r.prior, nil
}

func newTestService(repo *fakeStatsRepo, now time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func ptrStr(s string) *string { return &s }

func ptrFloat(f float64) *float64 { return &f }

func TestOverviewEmptyFarm(t *testing.T) {
	repo := &fakeStatsRepo{}
	svc := newTestService(repo, time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC))

	overview, err := svc.Overview(context.Background(), "farm-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	current := overview.Current
	if current.TotalAnimals != 0 || current.AverageAge != 0 || current.AverageWeight != 0 || current.HealthAlerts != 0 {
		t.Fatalf("expected all zeros, got %+v", current)
	}
	if len(current.AgeDistribution) != len(animals.AgeBuckets) {
		t.Fatalf("expected %d buckets even when empty, got %d", len(animals.AgeBuckets), len(current.AgeDistribution))
	}
	for i, bucket := range current.AgeDistribution {
		if bucket.Name != animals.AgeBuckets[i] || bucket.Count != 0 {
			t.Fatalf("bucket %d: expected %q count 0, got %+v", i, animals.AgeBuckets[i], bucket)
		}
	}
	if overview.Changes.Animals != "0" {
		t.Fatalf("expected zero delta rendered as %q, got %q", "0", overview.Changes.Animals)
	}
}

func TestOverviewPriorCutoffIsEndOfPreviousMonth(t *testing.T) {
	repo := &fakeStatsRepo{}
	svc := newTestService(repo, time.Date(2026, 3, 1, 0, 30, 0, 0, time.UTC))

	if _, err := svc.Overview(context.Background(), "farm-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(repo.cutoffs) != 1 {
		t.Fatalf("expected one historical query, got %d", len(repo.cutoffs))
	}
	want := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	if !repo.cutoffs[0].Equal(want) {
		t.Fatalf("expected cutoff %v, got %v", want, repo.cutoffs[0])
	}
}

func TestOverviewSnapshotAndDeltas(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeStatsRepo{
		current: []AnimalHealth{
			{AnimalID: "a1", BirthDate: now.AddDate(0, 0, -90), LatestStatus: ptrStr(animals.StatusHealthy), LatestWeight: ptrFloat(200)},
			{AnimalID: "a2", BirthDate: now.AddDate(0, 0, -400), LatestStatus: ptrStr(animals.StatusSick), LatestWeight: ptrFloat(400)},
			{AnimalID: "a3", BirthDate: now.AddDate(0, 0, -800), LatestStatus: nil, LatestWeight: nil},
		},
		prior: []AnimalHealth{
			{AnimalID: "a3", BirthDate: now.AddDate(0, 0, -800), LatestStatus: ptrStr(animals.StatusQuarantined), LatestWeight: ptrFloat(350)},
		},
	}
	svc := newTestService(repo, now)

	overview, err := svc.Overview(context.Background(), "farm-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	current := overview.Current
	if current.TotalAnimals != 3 {
		t.Fatalf("expected 3 animals, got %d", current.TotalAnimals)
	}
	// Animals with no weight on record stay out of the average.
	if current.AverageWeight != 300 {
		t.Fatalf("expected average weight 300, got %d", current.AverageWeight)
	}
	if current.HealthAlerts != 1 {
		t.Fatalf("expected 1 alert, got %d", current.HealthAlerts)
	}

	counts := map[string]int{}
	for _, bucket := range current.AgeDistribution {
		counts[bucket.Name] = bucket.Count
	}
	if counts["0-6 months"] != 1 || counts["13-24 months"] != 1 || counts["25-36 months"] != 1 {
		t.Fatalf("unexpected distribution: %+v", current.AgeDistribution)
	}

	if overview.Changes.Animals != "+2" {
		t.Fatalf("expected animals delta +2, got %q", overview.Changes.Animals)
	}
	if overview.Changes.Alerts != "0" {
		t.Fatalf("expected alerts delta 0, got %q", overview.Changes.Alerts)
	}
	if overview.Changes.Weight != "-50" {
		t.Fatalf("expected weight delta -50, got %q", overview.Changes.Weight)
	}
}
