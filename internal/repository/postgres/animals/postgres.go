package animals

import (
	"context"
	"errors"
	"strings"

	animalsdomain "herdbook-go/internal/domain/animals"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards so a search term is matched as a
// literal substring.
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(animalsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

// List runs the main inventory query. The latest health status rides along
// via a lateral subquery so the service can derive the displayed status
// without a second round trip per row.
func (r *PostgresRepository) List(ctx context.Context, farmID string, query animalsdomain.Query) ([]animalsdomain.Row, int64, error) {
	conditions := []string{"a.farm_id = ?", "a.deleted_at IS NULL"}
	args := []interface{}{farmID}

	if query.Search != "" {
		pattern := "%" + escapeLike(query.Search) + "%"
		conditions = append(conditions, "(a.name ILIKE ? OR b.name ILIKE ?)")
		args = append(args, pattern, pattern)
	}
	if query.BreedID != "" {
		conditions = append(conditions, "a.breed_id = ?")
		args = append(args, query.BreedID)
	}
	if query.FilterByIDs {
		if len(query.IDs) == 0 {
			// Derived filter matched nothing; the query still runs and
			// yields an empty page.
			conditions = append(conditions, "1 = 0")
		} else {
			conditions = append(conditions, "a.id IN (?)")
			args = append(args, query.IDs)
		}
	}

	where := strings.Join(conditions, " AND ")

	countQuery := "SELECT COUNT(*) FROM animals a JOIN breeds b ON b.id = a.breed_id WHERE " + where
	var total int64
	if err := r.db.WithContext(ctx).Raw(countQuery, args...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := "SELECT a.id, a.name, a.sex, a.birth_date, b.name AS breed_name, hr.status AS latest_status " +
		"FROM animals a " +
		"JOIN breeds b ON b.id = a.breed_id " +
		"LEFT JOIN LATERAL (" +
		"SELECT status FROM health_records WHERE animal_id = a.id ORDER BY date DESC LIMIT 1" +
		") hr ON true " +
		"WHERE " + where + " ORDER BY a.name ASC LIMIT ? OFFSET ?"
	args = append(args, query.Limit, query.Offset)

	var rows []animalsdomain.Row
	if err := r.db.WithContext(ctx).Raw(listQuery, args...).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, farmID, animalID string) (*animalsdomain.Animal, error) {
	var animal animalsdomain.Animal
	if err := r.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, animalID).
		First(&animal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, animalsdomain.ErrAnimalNotFound
		}
		return nil, err
	}
	return &animal, nil
}

func (r *PostgresRepository) GetDetail(ctx context.Context, farmID, animalID string) (*animalsdomain.Detail, error) {
	animal, err := r.GetByID(ctx, farmID, animalID)
	if err != nil {
		return nil, err
	}

	var breedName string
	if err := r.db.WithContext(ctx).
		Raw("SELECT name FROM breeds WHERE id = ?", animal.BreedID).
		Scan(&breedName).Error; err != nil {
		return nil, err
	}

	var records []animalsdomain.HealthRecord
	if err := r.db.WithContext(ctx).
		Where("animal_id = ?", animal.ID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return &animalsdomain.Detail{
		Animal:    *animal,
		BreedName: breedName,
		Records:   records,
	}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, animal *animalsdomain.Animal) error {
	return r.db.WithContext(ctx).Create(animal).Error
}

func (r *PostgresRepository) Update(ctx context.Context, animal *animalsdomain.Animal) error {
	return r.db.WithContext(ctx).
		Model(&animalsdomain.Animal{}).
		Where("id = ? AND farm_id = ?", animal.ID, animal.FarmID).
		Updates(map[string]interface{}{
			"name":       animal.Name,
			"birth_date": animal.BirthDate,
			"breed_id":   animal.BreedID,
			"sex":        animal.Sex,
			"updated_at": animal.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, farmID, animalID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&animalsdomain.Animal{}, "farm_id = ? AND id = ?", farmID, animalID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) AddHealthRecord(ctx context.Context, record *animalsdomain.HealthRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) LatestRecord(ctx context.Context, animalID string) (*animalsdomain.HealthRecord, error) {
	var record animalsdomain.HealthRecord
	if err := r.db.WithContext(ctx).
		Where("animal_id = ?", animalID).
		Order("date DESC").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) LatestStatuses(ctx context.Context, farmID string) ([]animalsdomain.StatusEntry, error) {
	query := "SELECT a.id AS animal_id, hr.status AS latest_status " +
		"FROM animals a " +
		"LEFT JOIN LATERAL (" +
		"SELECT status FROM health_records WHERE animal_id = a.id ORDER BY date DESC LIMIT 1" +
		") hr ON true " +
		"WHERE a.farm_id = ? AND a.deleted_at IS NULL"

	var entries []animalsdomain.StatusEntry
	if err := r.db.WithContext(ctx).Raw(query, farmID).Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
