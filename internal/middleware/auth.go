package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/identity"
)

const identityKey = "identity"

// Claims mirror what the external identity provider stamps into session
// tokens. The service trusts the (subject, company) pairing as-is.
type Claims struct {
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

// SignToken issues a token with the platform claims. Used by tests and
// local tooling; production tokens come from the identity provider.
func SignToken(secret, subject, companyID, role, email, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		CompanyID: companyID,
		Role:      role,
		Email:     email,
		Name:      name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseToken(secret, token string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// WithAuth attaches the caller's identity to the gin context when a valid
// bearer token is present. It never rejects; pair with RequireAuth.
func WithAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if claims, err := parseToken(secret, token); err == nil {
				c.Set(identityKey, identity.Identity{
					UserID:    claims.Subject,
					CompanyID: claims.CompanyID,
					Role:      claims.Role,
					Email:     claims.Email,
					Name:      claims.Name,
				})
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 when WithAuth attached no identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(identityKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
			return
		}
		c.Next()
	}
}

// IdentityFromContext returns the caller identity attached by WithAuth.
func IdentityFromContext(c *gin.Context) (identity.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return identity.Identity{}, false
	}
	ident, ok := v.(identity.Identity)
	return ident, ok
}
