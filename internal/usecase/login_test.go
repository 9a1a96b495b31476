package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newLoginUseCase(t *testing.T) *LoginUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewLoginUseCase(AdminCredentials{
		Email:        "admin@school.test",
		Username:     "admin",
		PasswordHash: string(hash),
		Token:        "static-admin-token",
	}, zap.NewNop())
}

func TestLoginWithEmail(t *testing.T) {
	out, err := newLoginUseCase(t).Execute(context.Background(), LoginInput{
		Email:    "Admin@School.test",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "static-admin-token", out.Token)
}

func TestLoginWithUsername(t *testing.T) {
	out, err := newLoginUseCase(t).Execute(context.Background(), LoginInput{
		Username: "admin",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "static-admin-token", out.Token)
}

func TestLoginRejected(t *testing.T) {
	uc := newLoginUseCase(t)
	cases := map[string]LoginInput{
		"wrong password": {Email: "admin@school.test", Password: "nope"},
		"unknown email":  {Email: "other@school.test", Password: "s3cret"},
		"no identity":    {Password: "s3cret"},
		"empty password": {Username: "admin"},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), in)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLoginWithoutConfiguredHash(t *testing.T) {
	uc := NewLoginUseCase(AdminCredentials{Username: "admin", Token: "t"}, zap.NewNop())

	_, err := uc.Execute(context.Background(), LoginInput{Username: "admin", Password: "anything"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
