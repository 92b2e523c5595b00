package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/stoyanovb/gradina-api/internal/application/dto"
	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
	"github.com/stoyanovb/gradina-api/pkg/jwt"
)

// JWTConfig carries token issuing settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase is the back-office login. Partner login lives in the B2B
// package because it gates on the approval workflow.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constructs the use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies admin credentials and issues a token with the role claim.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AdminLoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, "", "", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AdminLoginResponse{Token: token, Name: user.Name, Role: user.Role}, nil
}
