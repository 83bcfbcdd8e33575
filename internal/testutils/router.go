package testutils

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrackr/internal/api/middleware"
	"github.com/linskybing/bugtrackr/internal/api/routes"
	"github.com/linskybing/bugtrackr/internal/config"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/internal/repository"
)

const TestJWTSecret = "test-secret"

// SetupRouter builds the full API router over repos with a fixed signing key.
func SetupRouter(repos *repository.Repos) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.JwtSecret = TestJWTSecret
	config.Issuer = "bugtrackr-test"
	middleware.Init()

	r := gin.New()
	routes.RegisterRoutes(r, repos)
	return r
}

// MintToken signs a token for userID that the router accepts.
func MintToken(userID string, role user.Role) string {
	token, err := middleware.GenerateToken(userID, role, time.Hour)
	if err != nil {
		panic(err)
	}
	return token
}
