package users

import (
	"context"
	"errors"
	"time"

	farmsdomain "herdbook-go/internal/domain/farms"
	usersdomain "herdbook-go/internal/domain/users"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(usersdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID string) (*usersdomain.User, error) {
	var user usersdomain.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usersdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*usersdomain.User, error) {
	var user usersdomain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usersdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *usersdomain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *PostgresRepository) UpdateUserName(ctx context.Context, userID, name string) error {
	return r.db.WithContext(ctx).
		Model(&usersdomain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *PostgresRepository) CreateFarm(ctx context.Context, farm *farmsdomain.Farm) error {
	return r.db.WithContext(ctx).Create(farm).Error
}

func (r *PostgresRepository) ListFarmsByOwner(ctx context.Context, ownerID string) ([]farmsdomain.Farm, error) {
	var farms []farmsdomain.Farm
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&farms).Error; err != nil {
		return nil, err
	}
	return farms, nil
}

func (r *PostgresRepository) CreatePreferences(ctx context.Context, preferences *usersdomain.Preferences) error {
	return r.db.WithContext(ctx).Create(preferences).Error
}

func (r *PostgresRepository) GetPreferences(ctx context.Context, userID string) (*usersdomain.Preferences, error) {
	var preferences usersdomain.Preferences
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&preferences).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &preferences, nil
}

func (r *PostgresRepository) GetSession(ctx context.Context, token string) (*usersdomain.Session, error) {
	var session usersdomain.Session
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usersdomain.ErrInvalidSession
		}
		return nil, err
	}
	return &session, nil
}
