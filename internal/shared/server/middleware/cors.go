package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var corsRequestHeaders = []string{
	"Origin", "Accept", "Content-Type", "Content-Length", "Authorization",
	"X-Requested-With", "X-Request-Id",
}

// CORS sets CORS headers and answers preflight requests. An empty list or a
// "*" entry allows every origin and header without credentials; an explicit
// origin list echoes the origin and allows credentials for the listed headers.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        10 * time.Minute,
	}

	origins := make([]string, 0, len(allowedOrigins))
	anyOrigin := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		trimmed := strings.TrimSpace(o)
		switch trimmed {
		case "":
		case "*":
			anyOrigin = true
		default:
			origins = append(origins, trimmed)
		}
	}
	if anyOrigin || len(origins) == 0 {
		// Browsers only honor "*" headers on requests without credentials.
		cfg.AllowAllOrigins = true
		cfg.AllowHeaders = append(append([]string{}, corsRequestHeaders...), "*")
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowHeaders = corsRequestHeaders
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
