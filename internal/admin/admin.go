/*
Package admin authenticates the single operator account.

There is no user table: the admin identity is an email plus a bcrypt hash
supplied through the environment. A successful login yields a short-lived
JWT that unlocks the maintenance endpoints (seed, drop, legacy migration).
*/
package admin

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"github.com/anavarrete/frameteca/internal/platform/constants"
	"github.com/anavarrete/frameteca/internal/platform/sec"
)

// Credentials is the configured operator identity.
type Credentials struct {
	Email        string
	PasswordHash string
}

// Service verifies operator credentials and issues access tokens.
type Service struct {
	credentials Credentials
	tokens      *sec.TokenService
	logger      *slog.Logger
}

func NewService(credentials Credentials, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{credentials: credentials, tokens: tokens, logger: logger}
}

// Login checks the supplied credentials and returns a signed access token.
// The failure reason (unknown email vs wrong password) is logged but never
// distinguished to the caller.
func (s *Service) Login(email, password string) (string, bool) {
	emailMatches := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(email)),
		[]byte(strings.ToLower(s.credentials.Email)),
	) == 1

	// The hash comparison runs even on an email mismatch so both failure
	// paths take comparable time.
	passwordMatches := sec.CheckPasswordHash(password, s.credentials.PasswordHash)

	if !emailMatches || !passwordMatches {
		s.logger.Warn("admin_login_rejected", slog.Bool("email_match", emailMatches))
		return "", false
	}

	token, err := s.tokens.GenerateAccessToken(s.credentials.Email, constants.RoleAdmin, constants.AdminTokenTTL)
	if err != nil {
		s.logger.Error("admin_token_generation_failed", slog.String("error", err.Error()))
		return "", false
	}

	s.logger.Info("admin_login_succeeded", slog.String("email", s.credentials.Email))
	return token, true
}
