package diagnostics

import (
	"github.com/gin-gonic/gin"

	"recruit-api/internal/shared/server/respond"
)

// Handler exposes the diagnostics service over HTTP.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches / and /test to the engine root.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.liveness)
	r.GET("/test", h.report)
}

func (h *Handler) liveness(c *gin.Context) {
	respond.OK(c, h.Svc.Liveness())
}

func (h *Handler) report(c *gin.Context) {
	respond.OK(c, h.Svc.Report(c.Request.Context()))
}
