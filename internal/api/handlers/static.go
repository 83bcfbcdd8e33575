package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrackr/pkg/response"
)

// NoRoute answers unmatched API routes with a JSON 404. When frontendDir is
// set, other GET requests are served from it, falling back to index.html so
// client-side routes resolve.
func NoRoute(frontendDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead
		if frontendDir == "" || !isRead || reqPath == "/api" || strings.HasPrefix(reqPath, "/api/") {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Route not found"})
			return
		}

		file := filepath.Join(frontendDir, filepath.FromSlash(path.Clean("/"+reqPath)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(frontendDir, "index.html"))
	}
}
