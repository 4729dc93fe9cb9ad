package breeds

import (
	"context"
	"testing"
)

type fakeBreedRepo struct {
	breeds []Breed
	counts []BreedCount
}

func (r *fakeBreedRepo) List(ctx context.Context) ([]Breed, error) {
	return append([]Breed(nil), r.breeds...), nil
}

func (r *fakeBreedRepo) CountByBreed(ctx context.Context, farmID string) ([]BreedCount, error) {
	return append([]BreedCount(nil), r.counts...), nil
}

func TestListSortsOtherLast(t *testing.T) {
	repo := &fakeBreedRepo{breeds: []Breed{
		{ID: "b1", Name: "Jersey"},
		{ID: "b2", Name: "Other"},
		{ID: "b3", Name: "Angus"},
	}}
	svc := NewService(repo)

	breeds, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"Angus", "Jersey", "Other"}
	for i, name := range want {
		if breeds[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, breeds[i].Name)
		}
	}
}

func TestDistributionPercentagesAndOrder(t *testing.T) {
	repo := &fakeBreedRepo{counts: []BreedCount{
		{Name: "Other", Count: 10},
		{Name: "Holstein", Count: 5},
		{Name: "Angus", Count: 5},
		{Name: "Jersey", Count: 20},
	}}
	svc := NewService(repo)

	rows, err := svc.Distribution(context.Background(), "farm-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if rows[0].Name != "Jersey" || rows[len(rows)-1].Name != "Other" {
		t.Fatalf("expected Jersey first and Other last, got %+v", rows)
	}
	if rows[0].Percentage != 50 {
		t.Fatalf("expected Jersey at 50%%, got %v", rows[0].Percentage)
	}
	// Ties keep the repository's order.
	if rows[1].Name != "Holstein" || rows[2].Name != "Angus" {
		t.Fatalf("expected stable tie order Holstein then Angus, got %+v", rows)
	}
}

func TestDistributionEmptyFarm(t *testing.T) {
	svc := NewService(&fakeBreedRepo{})

	rows, err := svc.Distribution(context.Background(), "farm-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
