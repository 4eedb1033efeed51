package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/exam-hub/pkg/response"
)

const claimsKey = "claims"

// Claims identify the caller. The hub itself signs tokens with Admin set; a token issued
// for a single user has that user as subject.
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// JWTAuth checks HS256 bearer tokens signed with the shared hub secret.
// With an empty secret every request is let through.
type JWTAuth struct {
	key    []byte
	issuer string
}

func NewJWTAuth(secret, issuer string) *JWTAuth {
	return &JWTAuth{key: []byte(secret), issuer: issuer}
}

func (a *JWTAuth) Enabled() bool { return len(a.key) > 0 }

// GenerateToken issues a signed token for subject.
func (a *JWTAuth) GenerateToken(subject string, admin bool, expireDuration time.Duration) (string, error) {
	if !a.Enabled() {
		return "", errors.New("no signing secret configured")
	}
	claims := &Claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
}

// ParseToken validates tokenStr and returns its claims.
func (a *JWTAuth) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return a.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, response.ErrorResponse{Error: msg})
}

// Required validates the bearer token and stores its claims on the context.
func (a *JWTAuth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Enabled() {
			c.Next()
			return
		}
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}
		claims, err := a.ParseToken(parts[1])
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid token: "+err.Error())
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Admin only lets hub tokens through. Must run after Required.
func (a *JWTAuth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Enabled() {
			c.Next()
			return
		}
		if claims, ok := ClaimsFromContext(c); !ok || !claims.Admin {
			abort(c, http.StatusForbidden, "admin token required")
			return
		}
		c.Next()
	}
}

// SelfOrAdmin lets through hub tokens and tokens whose subject matches the named path parameter.
func (a *JWTAuth) SelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Enabled() {
			c.Next()
			return
		}
		claims, ok := ClaimsFromContext(c)
		if !ok || (!claims.Admin && claims.Subject != c.Param(param)) {
			abort(c, http.StatusForbidden, "token does not grant access to this user")
			return
		}
		c.Next()
	}
}

func ClaimsFromContext(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
