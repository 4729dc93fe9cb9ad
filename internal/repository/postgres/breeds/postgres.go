package breeds

import (
	"context"

	breedsdomain "herdbook-go/internal/domain/breeds"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]breedsdomain.Breed, error) {
	var breeds []breedsdomain.Breed
	if err := r.db.WithContext(ctx).Find(&breeds).Error; err != nil {
		return nil, err
	}
	return breeds, nil
}

func (r *PostgresRepository) CountByBreed(ctx context.Context, farmID string) ([]breedsdomain.BreedCount, error) {
	query := "SELECT b.name AS name, COUNT(a.id) AS count " +
		"FROM animals a " +
		"JOIN breeds b ON b.id = a.breed_id " +
		"WHERE a.farm_id = ? AND a.deleted_at IS NULL " +
		"GROUP BY b.name"

	var counts []breedsdomain.BreedCount
	if err := r.db.WithContext(ctx).Raw(query, farmID).Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
