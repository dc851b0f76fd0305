package environment

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes the claims of the proxy bearer token. The server never
// verifies the signature; that is the proxy's job.
type TokenInfo struct {
	Subject   string
	Audience  []string
	Issuer    string
	ExpiresAt *time.Time
}

// Expired reports whether the token carries an expiry that has passed at now.
func (t TokenInfo) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// InspectToken reads the claims of a JWT bearer token without verifying it.
// Opaque tokens return an error and are still usable.
func InspectToken(token string) (TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("token is not a JWT: %w", err)
	}

	var info TokenInfo
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if aud, err := claims.GetAudience(); err == nil {
		info.Audience = aud
	}
	if iss, err := claims.GetIssuer(); err == nil {
		info.Issuer = iss
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenInfo{}, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
	}
	return info, nil
}
