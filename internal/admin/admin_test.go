package admin_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anavarrete/frameteca/internal/admin"
	"github.com/anavarrete/frameteca/internal/platform/constants"
	"github.com/anavarrete/frameteca/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(t *testing.T, email, password string) (*admin.Service, *sec.TokenService) {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	tokens, err := sec.NewTokenService(testSecret, constants.AuthIssuer)
	require.NoError(t, err)

	service := admin.NewService(admin.Credentials{
		Email:        email,
		PasswordHash: hash,
	}, tokens, slog.Default())

	return service, tokens
}

/*
TestService_Login_Success verifies that valid credentials yield a verifiable
admin token.
*/
func TestService_Login_Success(t *testing.T) {
	service, tokens := newTestService(t, "ops@frameteca.app", "secreto123")

	token, ok := service.Login("ops@frameteca.app", "secreto123")
	require.True(t, ok)
	require.NotEmpty(t, token)

	claims, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@frameteca.app", claims.Email)
	assert.Equal(t, constants.RoleAdmin, claims.Role)
}

/*
TestService_Login_EmailCaseInsensitive verifies that the email comparison
ignores case.
*/
func TestService_Login_EmailCaseInsensitive(t *testing.T) {
	service, _ := newTestService(t, "ops@frameteca.app", "secreto123")

	_, ok := service.Login("OPS@Frameteca.App", "secreto123")
	assert.True(t, ok)
}

/*
TestService_Login_Rejections verifies that neither a wrong password nor an
unknown email produces a token.
*/
func TestService_Login_Rejections(t *testing.T) {
	service, _ := newTestService(t, "ops@frameteca.app", "secreto123")

	token, ok := service.Login("ops@frameteca.app", "incorrecta")
	assert.False(t, ok)
	assert.Empty(t, token)

	token, ok = service.Login("otra@frameteca.app", "secreto123")
	assert.False(t, ok)
	assert.Empty(t, token)
}
