package farms

import (
	"context"
	"errors"
	"time"

	farmsdomain "herdbook-go/internal/domain/farms"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByOwner(ctx context.Context, ownerID string) (*farmsdomain.Farm, error) {
	var farm farmsdomain.Farm
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		First(&farm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, farmsdomain.ErrFarmNotFound
		}
		return nil, err
	}
	return &farm, nil
}

func (r *PostgresRepository) UpdateName(ctx context.Context, farmID, name string) error {
	return r.db.WithContext(ctx).
		Model(&farmsdomain.Farm{}).
		Where("id = ?", farmID).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": time.Now().UTC(),
		}).Error
}
