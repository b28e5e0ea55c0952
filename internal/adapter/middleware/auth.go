package middleware

import (
	"net/http"
	"strings"

	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/domain/user"
	"leadcrm-backend/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorKey = "crm.actor"

// UserClaim is the "user" object carried by tokens issued by the auth service.
type UserClaim struct {
	ID    uint64 `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// Auth verifies an HS256 bearer token and stores the caller as a pipeline.Actor.
// The request context is tagged with user_id and actor_role for later log lines.
// Token issuance lives outside this service.
func Auth(secret []byte, log *logger.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = logger.Nop()
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFn := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			raw = strings.TrimSpace(raw)
			if !ok || raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			var claims Claims
			tok, err := parser.ParseWithClaims(raw, &claims, keyFn)
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			role, err := user.ParseRole(claims.User.Role)
			if err != nil || claims.User.ID == 0 {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid user claim"})
			}

			SetActor(c, pipeline.Actor{UserID: claims.User.ID, Role: role})
			ctx := log.WithUserID(c.Request().Context(), claims.User.ID)
			ctx = log.WithActorRole(ctx, string(role))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func SetActor(c echo.Context, a pipeline.Actor) { c.Set(actorKey, a) }

func ActorFrom(c echo.Context) (pipeline.Actor, bool) {
	a, ok := c.Get(actorKey).(pipeline.Actor)
	return a, ok
}
