package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"prepcenter/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
	RoleClient   Role = "CLIENT"
)

const actorContextKey = "actor"

var (
	errMissingToken = errors.New("missing bearer token")
	errUnknownRole  = errors.New("unknown role")
)

// Actor is the authenticated caller. Tokens are issued elsewhere; this service only
// verifies them and reads the subject and role.
type Actor struct {
	ID   kernel.UUID
	Role Role
}

// Claims is the token payload. Subject carries the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ActorMiddleware authenticates every request with an HS256 bearer token and stores the
// Actor on the echo context. Paths for which skip returns true pass through untouched.
func ActorMiddleware(secret []byte, skip func(c echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip != nil && skip(c) {
				return next(c)
			}

			actor, err := parseActor(secret, c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials").SetInternal(err)
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func parseActor(secret []byte, header string) (Actor, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return Actor{}, errMissingToken
	}

	token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Actor{}, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Actor{}, errors.New("invalid token")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Actor{}, fmt.Errorf("subject: %w", err)
	}

	role := Role(claims.Role)
	if !slices.Contains([]Role{RoleAdmin, RoleOperator, RoleClient}, role) {
		return Actor{}, fmt.Errorf("%w %q", errUnknownRole, claims.Role)
	}

	return Actor{ID: id, Role: role}, nil
}

// SignToken issues a token for actor. Used by tests and local tooling only.
func SignToken(secret []byte, actor Actor, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = actor.ID.String()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: string(actor.Role), RegisteredClaims: claims})
	return token.SignedString(secret)
}

func actorFrom(c echo.Context) (Actor, error) {
	actor, ok := c.Get(actorContextKey).(Actor)
	if !ok {
		return Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	return actor, nil
}

// authorize returns the caller when its role is one of allowed.
func authorize(c echo.Context, allowed ...Role) (Actor, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return Actor{}, err
	}
	if !slices.Contains(allowed, actor.Role) {
		return Actor{}, echo.NewHTTPError(http.StatusForbidden, "operation not permitted for role "+string(actor.Role))
	}
	return actor, nil
}
