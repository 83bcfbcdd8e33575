package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrackr/pkg/response"
	"github.com/linskybing/bugtrackr/pkg/utils"
)

// Auth handles authorization middleware
type Auth struct{}

func NewAuth() *Auth {
	return &Auth{}
}

// Admin rejects callers whose stored role is not admin. It must run after
// JWTAuthMiddleware.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := utils.GetCurrentUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Not authorized, no user"})
			return
		}
		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Message: "Admin access required"})
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows the configured origins; a "*" entry allows any.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	}
	return cors.New(config)
}
