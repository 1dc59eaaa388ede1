package auth

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	errs "landingcms/internal/errors"
	"landingcms/internal/model"
	"landingcms/internal/repository"
)

// identityKey is the echo context key holding the authenticated identity.
const identityKey = "identity"

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	ID       uint
	Username string
	Role     string
}

// Middleware verifies the Authorization Bearer token on secured routes.
// Missing, malformed, badly signed and expired tokens all yield 401.
func Middleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, errs.Fail("invalid or missing token"))
		},
	})
}

// LoadIdentity resolves verified claims to a live user record and attaches
// the identity to the context. A token whose user has since been deleted is
// rejected the same way as an invalid token; a database failure is not an
// authorization verdict and surfaces as 500.
func LoadIdentity(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errs.Fail("invalid or missing token"))
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errs.Fail("invalid or missing token"))
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, errs.ErrNotFound) {
					return c.JSON(http.StatusUnauthorized, errs.Fail("token user no longer exists"))
				}
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, errs.Fail("internal server error"))
			}

			c.Set(identityKey, &Identity{
				ID:       user.ID,
				Username: user.Username,
				Role:     user.Role,
			})
			return next(c)
		}
	}
}

// CurrentIdentity returns the identity attached by LoadIdentity, or nil.
func CurrentIdentity(c echo.Context) *Identity {
	id, _ := c.Get(identityKey).(*Identity)
	return id
}

// RequireAdmin passes roles admin and super_admin. It never consults the
// database; the identity was already resolved by LoadIdentity.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := CurrentIdentity(c)
		if id == nil || (id.Role != model.RoleAdmin && id.Role != model.RoleSuperAdmin) {
			return c.JSON(http.StatusForbidden, errs.Fail("admin privileges required"))
		}
		return next(c)
	}
}

// RequireSuperAdmin passes only super_admin.
func RequireSuperAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := CurrentIdentity(c)
		if id == nil || id.Role != model.RoleSuperAdmin {
			return c.JSON(http.StatusForbidden, errs.Fail("super admin privileges required"))
		}
		return next(c)
	}
}
