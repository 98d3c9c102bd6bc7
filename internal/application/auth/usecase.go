package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uhg-tech/aura-core/internal/application/dto"
	"github.com/uhg-tech/aura-core/internal/domain"
	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
	"github.com/uhg-tech/aura-core/pkg/jwt"
)

// Cuenta de demostración comercial: su re-registro es idempotente y su ID es fijo.
const (
	DemoEmail  = "franck.abe@uhg-demo.com"
	demoUserID = "user_demo_franck_abe"
)

// RegistrationTxRunner ejecuta el alta de cuenta (usuario + perfil + sociedad)
// dentro de una única transacción.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		users repository.UserRepository,
		profiles repository.ProfileRepository,
		companies repository.CompanyRepository,
	) error) error
}

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tx          RegistrationTxRunner
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	tx RegistrationTxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, profileRepo: profileRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register crea usuario, perfil y sociedad por defecto en una transacción.
// Email duplicado → ErrEmailAlreadyExists, salvo la cuenta demo, que responde
// éxito con su ID existente (re-registro idempotente).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if in.Email == DemoEmail {
			return &dto.RegisterResponse{Success: true, Message: "Demo User OK.", UserID: existing.ID}, nil
		}
		return nil, domain.ErrEmailAlreadyExists
	}

	userID := uuid.New().String()
	if in.Email == DemoEmail {
		userID = demoUserID
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           userID,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	profile := &entity.Profile{
		ID:                userID,
		FullName:          in.FullName,
		UserType:          entity.UserTypeBusiness,
		PreferredLanguage: "en",
	}
	company := &entity.Company{
		ID:           uuid.New().String(),
		OwnerID:      userID,
		Name:         fmt.Sprintf("%s Global Ltd", in.FullName),
		IsFreeZone:   true,
		BaseCurrency: "AED",
	}

	err = uc.tx.RunRegistration(ctx, func(
		users repository.UserRepository,
		profiles repository.ProfileRepository,
		companies repository.CompanyRepository,
	) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if err := profiles.Create(ctx, profile); err != nil {
			return err
		}
		return companies.Create(ctx, company)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Success: true, Message: "Cuenta creada.", UserID: userID}, nil
}

// Login verifica credenciales y emite un JWT. Email desconocido y contraseña
// incorrecta devuelven el mismo ErrUnauthorized: no se revela cuál falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !VerifyPassword(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}

	name := ""
	if profile, err := uc.profileRepo.GetByUserID(ctx, user.ID); err == nil && profile != nil {
		name = profile.FullName
	}

	token := ""
	if uc.jwtCfg.Secret != "" {
		token, err = jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
	}

	return &dto.LoginResponse{Success: true, UserID: user.ID, Name: name, Token: token}, nil
}
