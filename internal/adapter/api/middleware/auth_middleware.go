package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"codecircle/internal/infrastructure/firebase"
)

// AuthMiddleware authenticates requests with either a provider ID token or a
// session token minted by the JWT exchange. Handlers read "email" (and "uid"
// when the provider token carried one) from the echo context.
type AuthMiddleware struct {
	authClient *firebase.AuthClient
	jwtSecret  string
}

func NewAuthMiddleware(authClient *firebase.AuthClient, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
		jwtSecret:  jwtSecret,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		token := parts[1]

		if identity, err := m.authClient.VerifyToken(c.Request().Context(), token); err == nil {
			c.Set("uid", identity.UID)
			c.Set("email", identity.Email)
			return next(c)
		}

		email, err := m.verifySessionToken(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("email", email)
		return next(c)
	}
}

func (m *AuthMiddleware) verifySessionToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.jwtSecret), nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}

// EmailFromContext returns the authenticated email, or "" when the request
// went through without credentials.
func EmailFromContext(c echo.Context) string {
	email, _ := c.Get("email").(string)
	return email
}
