package server

import (
	"github.com/gin-gonic/gin"

	"recruit-api/internal/applications"
	"recruit-api/internal/candidates"
	"recruit-api/internal/diagnostics"
	"recruit-api/internal/jobs"
	"recruit-api/internal/shared/config"
	"recruit-api/internal/shared/metrics"
	"recruit-api/internal/shared/server/middleware"
)

// RouterDeps carries the handlers mounted by NewRouter.
type RouterDeps struct {
	Config             config.Config
	DiagnosticsHandler *diagnostics.Handler
	JobsHandler        *jobs.Handler
	CandidatesHandler  *candidates.Handler
	ApplicationHandler *applications.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigins),
	)
	if deps.Config.RateLimitRPS > 0 && deps.Config.RateLimitBurst > 0 {
		r.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Rule: middleware.RateLimitRule{Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
		}))
	}

	if deps.DiagnosticsHandler != nil {
		deps.DiagnosticsHandler.RegisterRoutes(r)
	}
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.CandidatesHandler != nil {
		deps.CandidatesHandler.RegisterRoutes(api)
	}
	if deps.ApplicationHandler != nil {
		deps.ApplicationHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
