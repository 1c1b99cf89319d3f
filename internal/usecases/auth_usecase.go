package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"creator-pay.backend/internal/domain/entities"
	domainerrors "creator-pay.backend/internal/domain/errors"
	"creator-pay.backend/internal/domain/repositories"
	"creator-pay.backend/pkg/crypto"
	"creator-pay.backend/pkg/jwt"
	"creator-pay.backend/pkg/redis"
)

const sessionTTL = 24 * time.Hour

// AuthUsecase handles creator authentication business logic
type AuthUsecase struct {
	creatorRepo  repositories.CreatorRepository
	jwtService   *jwt.JWTService
	sessionStore *redis.SessionStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(creatorRepo repositories.CreatorRepository, jwtService *jwt.JWTService, sessionStore *redis.SessionStore) *AuthUsecase {
	return &AuthUsecase{
		creatorRepo:  creatorRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

// Register registers a new creator account
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.Creator, error) {
	existing, err := u.creatorRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("email already registered")
	}

	if input.Country != "" {
		if _, ok := ConfigForCountry(input.Country); !ok {
			return nil, domainerrors.BadRequest("unsupported country " + input.Country)
		}
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	creator := &entities.Creator{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         entities.CreatorRoleCreator,
		State:        entities.CreatorStateActive,
	}
	if input.Country != "" {
		creator.Country = null.StringFrom(input.Country)
	}

	if err := u.creatorRepo.Create(ctx, creator); err != nil {
		return nil, err
	}
	return creator, nil
}

// Login authenticates a creator and returns tokens or a session
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	creator, err := u.creatorRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if creator == nil || !crypto.CheckPassword(input.Password, creator.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if creator.State == entities.CreatorStateDeleted {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(creator.ID, creator.Email, string(creator.Role))
	if err != nil {
		return nil, err
	}

	if input.UseSession && u.sessionStore != nil {
		sessionID, err := crypto.GenerateSessionID()
		if err != nil {
			return nil, err
		}
		data := &redis.CreatorSession{
			CreatorID:    creator.ID,
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}
		if err := u.sessionStore.CreateSession(ctx, sessionID, data, sessionTTL); err != nil {
			return nil, err
		}
		return &entities.AuthResponse{SessionID: sessionID, Creator: creator}, nil
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Creator:      creator,
	}, nil
}

// RefreshToken generates a new token pair from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	creator, err := u.creatorRepo.GetByID(ctx, claims.CreatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil || creator.State == entities.CreatorStateDeleted {
		return nil, domainerrors.ErrUnauthorized
	}

	return u.jwtService.GenerateTokenPair(creator.ID, creator.Email, string(creator.Role))
}

// GetCreatorByID gets a creator by ID
func (u *AuthUsecase) GetCreatorByID(ctx context.Context, id uuid.UUID) (*entities.Creator, error) {
	creator, err := u.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, domainerrors.NotFound("creator not found")
	}
	return creator, nil
}
