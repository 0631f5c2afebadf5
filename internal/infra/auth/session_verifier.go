// Package auth provides the operator session verification used by the
// access gate.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"caftan/config"
	"caftan/internal/domain/service"
)

// jwtVerifier validates operator session tokens signed with the
// configured session secret.
type jwtVerifier struct {
	secret string
}

// NewSessionVerifier creates a session verifier from configuration.
// With no session secret configured, every session check fails and only
// the shared-secret path of the access gate remains.
func NewSessionVerifier(cfg *config.Config) service.SessionVerifier {
	var secret string
	if cfg.Session != nil {
		secret = cfg.Session.Secret
	}

	return &jwtVerifier{secret: secret}
}

// VerifySession parses and validates the token, returning its subject.
func (v *jwtVerifier) VerifySession(tokenString string) (string, error) {
	if v.secret == "" {
		return "", errors.New("operator sessions are not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(v.secret), nil
	})
	if err != nil {
		return "", errors.Wrap(err, "parse session token")
	}
	if !token.Valid {
		return "", errors.New("invalid session token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("session token has no subject")
	}

	return subject, nil
}
