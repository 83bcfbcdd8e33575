package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/bugtrackr/internal/config"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/internal/repository"
	"github.com/linskybing/bugtrackr/pkg/response"
	"github.com/linskybing/bugtrackr/pkg/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var jwtKey []byte

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed token for the given user.
var GenerateToken = func(userID string, role user.Role, expireDuration time.Duration) (string, error) {
	claims := &types.Claims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// JWTAuthMiddleware validates the Bearer token from the Authorization header
// (or the "token" cookie) and loads the user it names. Identity and role are
// taken from the stored user record, never from the request body.
func JWTAuthMiddleware(repos *repository.Repos) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				abortUnauthorized(c, "Authorization header format must be Bearer {token}")
				return
			}
			tokenStr = parts[1]
		} else if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
			tokenStr = cookie
		} else {
			abortUnauthorized(c, "Not authorized, no token")
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Not authorized, token failed")
			return
		}

		u, err := repos.User.GetUserByID(claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortUnauthorized(c, "Not authorized, user not found")
				return
			}
			log.Error().Err(err).Str("user_id", claims.UserID).Msg("failed to resolve token user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Server error"})
			return
		}

		c.Set(types.ContextClaimsKey, claims)
		c.Set(types.ContextUserKey, u)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Message: msg})
}
