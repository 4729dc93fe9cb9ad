package users

import (
	"time"

	"herdbook-go/internal/domain/farms"
)

const RoleUser = "USER"

type User struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null;uniqueIndex"`
	Password  string    `gorm:"not null"`
	Role      string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type Preferences struct {
	UserID      string    `gorm:"type:uuid;primaryKey"`
	EmailAlerts bool      `gorm:"not null;default:true"`
	DarkMode    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Session is a bearer token issued by the auth gateway. This service only
// verifies tokens, it never issues them.
type Session struct {
	Token     string    `gorm:"primaryKey"`
	UserID    string    `gorm:"type:uuid;index;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Account is the /users/me view: profile, owned farms and preferences.
type Account struct {
	User        User
	Farms       []farms.Farm
	Preferences *Preferences
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	FarmName string
}

type UpdateAccountInput struct {
	UserID string
	Name   string
}
