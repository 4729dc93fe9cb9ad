package users

import (
	"context"

	"herdbook-go/internal/domain/farms"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	UpdateUserName(ctx context.Context, userID, name string) error
	CreateFarm(ctx context.Context, farm *farms.Farm) error
	ListFarmsByOwner(ctx context.Context, ownerID string) ([]farms.Farm, error)
	CreatePreferences(ctx context.Context, preferences *Preferences) error
	GetPreferences(ctx context.Context, userID string) (*Preferences, error)
	GetSession(ctx context.Context, token string) (*Session, error)
}
