package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the single shared admin identity. Token is the bearer
// value the admin gate checks; login only hands it out.
type AdminCredentials struct {
	Email        string
	Username     string
	PasswordHash string
	Token        string
}

type LoginUseCase struct {
	Creds  AdminCredentials
	Logger *zap.Logger
}

func NewLoginUseCase(creds AdminCredentials, logger *zap.Logger) *LoginUseCase {
	return &LoginUseCase{Creds: creds, Logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if input.Password == "" || uc.Creds.PasswordHash == "" || uc.Creds.Token == "" {
		return nil, ErrInvalidCredentials
	}
	if !uc.identityMatches(input) {
		uc.Logger.Warn("admin login rejected: unknown identity")
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(uc.Creds.PasswordHash), []byte(input.Password)); err != nil {
		uc.Logger.Warn("admin login rejected: bad password")
		return nil, ErrInvalidCredentials
	}

	return &LoginOutput{Token: uc.Creds.Token}, nil
}

func (uc *LoginUseCase) identityMatches(input LoginInput) bool {
	email := strings.TrimSpace(input.Email)
	if email != "" && uc.Creds.Email != "" && strings.EqualFold(email, uc.Creds.Email) {
		return true
	}
	username := strings.TrimSpace(input.Username)
	return username != "" && uc.Creds.Username != "" && username == uc.Creds.Username
}
