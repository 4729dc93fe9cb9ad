package animals

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	List(ctx context.Context, farmID string, query Query) ([]Row, int64, error)
	GetByID(ctx context.Context, farmID, animalID string) (*Animal, error)
	GetDetail(ctx context.Context, farmID, animalID string) (*Detail, error)
	Create(ctx context.Context, animal *Animal) error
	Update(ctx context.Context, animal *Animal) error
	Delete(ctx context.Context, farmID, animalID string) (bool, error)
	AddHealthRecord(ctx context.Context, record *HealthRecord) error
	LatestRecord(ctx context.Context, animalID string) (*HealthRecord, error)
	LatestStatuses(ctx context.Context, farmID string) ([]StatusEntry, error)
}
