package auth

import (
	"context"
	"testing"
	"time"

	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/repository"
	"github.com/stretchr/testify/assert"
)

func newTestService() *AuthService {
	return NewAuthService(repository.NewMemoryUserRepository(), "test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterInput{
		Name:     "Jane Wanjiru",
		Email:    "  Jane@Example.COM ",
		Phone:    "0712345678",
		Password: "hunter22",
	})
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	// Same email again is a conflict.
	_, err = service.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterInput{Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "hunter22", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "hunter22", Role: "pilot"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	user, err := service.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "hunter22", Role: "mover"})
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleMover, user.Role)
}

func TestLoginAndParseToken(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterInput{
		Name:     "Jane Wanjiru",
		Email:    "jane@example.com",
		Password: "hunter22",
	})
	assert.NoError(t, err)

	token, user, err := service.Login(ctx, "JANE@example.com", "hunter22")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane@example.com", user.Email)

	snapshot, err := service.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", snapshot.Email)
	assert.Equal(t, "Jane Wanjiru", snapshot.Name)
	assert.Equal(t, domain.RoleClient, snapshot.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "hunter22"})
	assert.NoError(t, err)

	_, _, err = service.Login(ctx, "jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = service.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestParseToken_Invalid(t *testing.T) {
	service := newTestService()

	_, err := service.ParseToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// A token signed with a different secret is rejected.
	other := NewAuthService(repository.NewMemoryUserRepository(), "other-secret", time.Hour)
	_, err = other.Register(context.Background(), RegisterInput{Email: "jane@example.com", Password: "hunter22"})
	assert.NoError(t, err)
	token, _, err := other.Login(context.Background(), "jane@example.com", "hunter22")
	assert.NoError(t, err)

	_, err = service.ParseToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestParseToken_Expired(t *testing.T) {
	service := newTestService()
	service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	_, err := service.Register(context.Background(), RegisterInput{Email: "jane@example.com", Password: "hunter22"})
	assert.NoError(t, err)
	token, _, err := service.Login(context.Background(), "jane@example.com", "hunter22")
	assert.NoError(t, err)

	_, err = service.ParseToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
