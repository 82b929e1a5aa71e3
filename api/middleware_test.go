package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if user, ok := args.Get(1).(*domain.User); ok {
		return args.String(0), user, args.Error(2)
	}
	return args.String(0), nil, args.Error(2)
}

func (m *mockAuthService) ParseToken(token string) (*domain.UserSnapshot, error) {
	args := m.Called(token)
	if snapshot, ok := args.Get(0).(*domain.UserSnapshot); ok {
		return snapshot, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	c, _ := newTestContext(t)
	c.Request.Header.Set("Authorization", "Bearer good-token")

	actor := testActor(domain.RoleClient)
	service := new(mockAuthService)
	service.On("ParseToken", "good-token").Return(actor, nil)

	Authenticate(service, true)(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, actor, Actor(c))
}

func TestAuthenticate_MissingToken(t *testing.T) {
	c, recorder := newTestContext(t)
	service := new(mockAuthService)

	Authenticate(service, true)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthenticate_OptionalPassesAnonymous(t *testing.T) {
	c, _ := newTestContext(t)
	service := new(mockAuthService)

	Authenticate(service, false)(c)

	assert.False(t, c.IsAborted())
	assert.Nil(t, Actor(c))
}

func TestAuthenticate_InvalidTokenAlwaysRejected(t *testing.T) {
	c, recorder := newTestContext(t)
	c.Request.Header.Set("Authorization", "Bearer bad-token")

	service := new(mockAuthService)
	service.On("ParseToken", "bad-token").Return(nil, domain.ErrInvalidCredentials)

	// Even on an optional route a present-but-bad token is rejected.
	Authenticate(service, false)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	c, recorder := newTestContext(t)
	c.Request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	Authenticate(new(mockAuthService), true)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireRoles(t *testing.T) {
	cases := []struct {
		name    string
		actor   *domain.UserSnapshot
		allowed []domain.Role
		status  int
	}{
		{"mover allowed", testActor(domain.RoleMover), []domain.Role{domain.RoleMover, domain.RoleAdmin}, http.StatusOK},
		{"admin allowed", testActor(domain.RoleAdmin), []domain.Role{domain.RoleMover, domain.RoleAdmin}, http.StatusOK},
		{"client denied", testActor(domain.RoleClient), []domain.Role{domain.RoleMover, domain.RoleAdmin}, http.StatusForbidden},
		{"anonymous denied", nil, []domain.Role{domain.RoleMover, domain.RoleAdmin}, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.actor != nil {
				c.Set(actorKey, tc.actor)
			}

			RequireRoles(tc.allowed...)(c)

			if tc.status == http.StatusOK {
				assert.False(t, c.IsAborted())
			} else {
				assert.True(t, c.IsAborted())
				assert.Equal(t, tc.status, recorder.Code)
			}
		})
	}
}
