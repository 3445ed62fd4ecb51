package httpapi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/foodstore/internal/auth"
	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	claimsKey = "auth_claims"
	userKey   = "current_user"
)

var errMissingToken = fmt.Errorf("missing or malformed bearer token: %w", domain.ErrUnauthorized)

func bearerAuth(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scheme, token, ok := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
				return errMissingToken
			}

			claims, err := tokens.Parse(strings.TrimSpace(token))
			if err != nil {
				return err
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// requireUser resolves the caller from the verified email claim once per
// request. Handlers read the result with currentUser.
func requireUser(identity IdentityService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsKey).(*auth.Claims)
			if !ok {
				return errMissingToken
			}

			user, err := identity.ResolveUser(c.Request().Context(), claims.Email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return auth.ErrInvalidToken
				}
				return err
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

func currentUser(c echo.Context) domain.User {
	user, _ := c.Get(userKey).(domain.User)
	return user
}

func accessLog(log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			log.WithFields(logrus.Fields{
				"method":     req.Method,
				"path":       c.Path(),
				"uri":        req.RequestURI,
				"status":     res.Status,
				"latency_ms": time.Since(start).Milliseconds(),
				"request_id": res.Header().Get(echo.HeaderXRequestID),
				"remote_ip":  c.RealIP(),
			}).Info("request handled")

			return nil
		}
	}
}
