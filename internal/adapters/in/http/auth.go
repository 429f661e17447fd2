package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"deliveries/internal/pkg/clock"
	"deliveries/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	TokenLifetime = 30 * 24 * time.Hour

	roleContextKey = "role"
)

var ErrMissingToken = errors.New("missing or invalid bearer token")

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// TokenIssuer signs and validates HS256 role tokens.
type TokenIssuer struct {
	cfg   AuthConfig
	clock clock.Clock
}

func NewTokenIssuer(cfg AuthConfig, c clock.Clock) (*TokenIssuer, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errs.NewValueIsRequiredError("authSecret")
	}
	return &TokenIssuer{cfg: cfg, clock: clock.OrSystem(c)}, nil
}

func (i *TokenIssuer) Issue(role string) (string, error) {
	if strings.TrimSpace(role) == "" {
		return "", errs.NewValueIsRequiredError("role")
	}

	now := i.clock.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	if i.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{i.cfg.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(i.cfg.Secret))
}

func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.clock.Now),
		jwt.WithExpirationRequired(),
	}
	if i.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.cfg.Issuer))
	}
	if i.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(i.cfg.Audience))
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(i.cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMissingToken
	}
	return claims, nil
}

// RequireRole rejects requests without a valid bearer token and stores the
// token's role for the handlers.
func RequireRole(tokens *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := bearerToken(c.Request())
			if tokenString == "" {
				return c.JSON(http.StatusUnauthorized, Failed(ErrMissingToken.Error()))
			}

			claims, err := tokens.Parse(tokenString)
			if err != nil || strings.TrimSpace(claims.Role) == "" {
				return c.JSON(http.StatusUnauthorized, Failed(ErrMissingToken.Error()))
			}

			c.Set(roleContextKey, claims.Role)
			return next(c)
		}
	}
}

func RoleFrom(c echo.Context) string {
	role, _ := c.Get(roleContextKey).(string)
	return role
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
