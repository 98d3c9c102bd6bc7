package repository

import (
	"context"

	"github.com/uhg-tech/aura-core/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios.
// Las implementaciones devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ProfileRepository puerto de persistencia de perfiles (1:1 con User).
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
}
