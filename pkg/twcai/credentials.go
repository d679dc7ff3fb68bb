package twcai

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// warnIfExpired inspects the token without verifying its signature and
// logs a warning when it is a JWT whose expiry lies in the past. Timeweb
// API tokens are JWTs; anything that does not parse as one is treated as
// an opaque credential and passes silently. This never fails
// construction: the server remains the authority on token validity.
func warnIfExpired(logger *slog.Logger, token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}

	if time.Now().After(exp.Time) {
		logger.Warn("API token is expired", "expired_at", exp.Time)
	}
}
