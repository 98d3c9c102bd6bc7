package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de perfiles. Pasar pool o tx.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste el perfil 1:1 del usuario.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, full_name, avatar_url, phone_number, user_type, preferred_language)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, p.ID, p.FullName, p.AvatarURL, p.PhoneNumber, p.UserType, p.PreferredLanguage)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil del usuario; (nil, nil) si no existe.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `
		SELECT id, full_name, avatar_url, phone_number, user_type, preferred_language
		FROM profiles WHERE id = $1`
	var p entity.Profile
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.FullName, &p.AvatarURL, &p.PhoneNumber, &p.UserType, &p.PreferredLanguage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
