package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtsvc "hotelreserve/internal/pkg/jwt"
)

func newTestAuth(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("frontdesk123"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService("frontdesk@hotel.local", hash, jwtsvc.New("test-secret", time.Hour))
}

func TestService_Login_IssuesToken(t *testing.T) {
	svc := newTestAuth(t)

	token, err := svc.Login(context.Background(), "frontdesk@hotel.local", "frontdesk123")

	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtsvc.New("test-secret", time.Hour).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "frontdesk@hotel.local", claims.Email)
	assert.Equal(t, RoleStaff, claims.Role)
}

func TestService_Login_EmailIgnoresCase(t *testing.T) {
	svc := newTestAuth(t)

	_, err := svc.Login(context.Background(), "FrontDesk@Hotel.Local", "frontdesk123")

	assert.NoError(t, err)
}

func TestService_Login_RejectsBadCredentials(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "frontdesk@hotel.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "somebody@else.local", "frontdesk123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
