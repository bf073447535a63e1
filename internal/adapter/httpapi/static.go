package httpapi

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// fallbackHandler answers every unmatched route.
// /api paths always get a JSON 404; other paths are served from staticDir when it is set,
// falling back to index.html so client-side routing works.
func fallbackHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if staticDir != "" && !strings.HasPrefix(p, "/api") &&
			(c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			serveStatic(c, staticDir, p)
			return
		}

		c.JSON(http.StatusNotFound, gin.H{
			"error":              "Route not found",
			"method":             c.Request.Method,
			"path":               c.Request.URL.RequestURI(),
			"availableEndpoints": availableEndpoints,
			"timestamp":          time.Now().UTC(),
		})
	}
}

func serveStatic(c *gin.Context, staticDir, urlPath string) {
	// Cleaning against "/" keeps the resolved file inside staticDir
	name := filepath.Join(staticDir, filepath.FromSlash(path.Clean("/"+urlPath)))
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		c.File(name)
		return
	}
	c.File(filepath.Join(staticDir, "index.html"))
}

// staticDirAvailable reports whether dir holds a built frontend
func staticDirAvailable(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, "index.html"))
	return err == nil && !info.IsDir()
}
