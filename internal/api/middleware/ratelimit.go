package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AttemptLimiter is the contract the rate-limit middleware needs from the
// Redis-backed limiter.
type AttemptLimiter interface {
	Allow(ctx context.Context, addr string) (bool, error)
}

// LoginRateLimit rejects requests from addresses that exhausted their login
// attempt budget. Limiter failures are logged and the request is let through:
// an unreachable Redis must not lock everyone out.
func LoginRateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("addr", c.RealIP()).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			return next(c)
		}
	}
}
