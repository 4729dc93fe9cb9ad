package stats

import (
	"context"
	"time"

	statsdomain "herdbook-go/internal/domain/stats"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) HerdHealth(ctx context.Context, farmID string, asOf *time.Time) ([]statsdomain.AnimalHealth, error) {
	// Placeholder order follows the final SQL: the lateral subquery's date
	// cutoff comes before the outer WHERE.
	recordWhere := "animal_id = a.id"
	herdWhere := "a.farm_id = ? AND a.deleted_at IS NULL"
	var args []interface{}

	if asOf != nil {
		recordWhere += " AND date <= ?"
		herdWhere += " AND a.created_at <= ?"
		args = []interface{}{*asOf, farmID, *asOf}
	} else {
		args = []interface{}{farmID}
	}

	query := "SELECT a.id AS animal_id, a.birth_date, hr.status AS latest_status, hr.weight AS latest_weight " +
		"FROM animals a " +
		"LEFT JOIN LATERAL (" +
		"SELECT status, weight FROM health_records WHERE " + recordWhere + " ORDER BY date DESC LIMIT 1" +
		") hr ON true " +
		"WHERE " + herdWhere

	var herd []statsdomain.AnimalHealth
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&herd).Error; err != nil {
		return nil, err
	}
	return herd, nil
}
