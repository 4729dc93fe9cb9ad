package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"herdbook-go/internal/domain/farms"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Signup creates the user, their farm and default preferences in a single
// transaction; a failure in any step rolls back the others.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	farmName := strings.TrimSpace(input.FarmName)

	if name == "" || email == "" || input.Password == "" || farmName == "" {
		return nil, fmt.Errorf("missing required fields")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     RoleUser,
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}

		if err := tx.CreateUser(ctx, &user); err != nil {
			return err
		}

		farm := farms.Farm{
			ID:      uuid.NewString(),
			Name:    farmName,
			OwnerID: user.ID,
		}
		if err := tx.CreateFarm(ctx, &farm); err != nil {
			return err
		}

		preferences := Preferences{
			UserID:      user.ID,
			EmailAlerts: true,
			DarkMode:    false,
		}
		return tx.CreatePreferences(ctx, &preferences)
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetAccount assembles the /users/me view. The password hash stays inside
// the domain; callers serialize Account, never User.Password.
func (s *Service) GetAccount(ctx context.Context, userID string) (*Account, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ownerFarms, err := s.repo.ListFarmsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	preferences, err := s.repo.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Account{
		User:        *user,
		Farms:       ownerFarms,
		Preferences: preferences,
	}, nil
}

// UpdateAccount renames the user. Farm renames go through the farms service
// so its owner cache stays coherent.
func (s *Service) UpdateAccount(ctx context.Context, input UpdateAccountInput) (*Account, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if _, err := s.repo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateUserName(ctx, input.UserID, name); err != nil {
		return nil, err
	}

	return s.GetAccount(ctx, input.UserID)
}

// VerifySession resolves a bearer token to a user id, rejecting unknown and
// expired tokens alike.
func (s *Service) VerifySession(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidSession
	}

	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			return "", ErrInvalidSession
		}
		return "", err
	}

	if !session.ExpiresAt.After(s.now()) {
		return "", ErrInvalidSession
	}

	return session.UserID, nil
}
