package jobs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruit-api/internal/shared/ids"
	"recruit-api/internal/shared/server/middleware"
	"recruit-api/internal/shared/server/respond"
	"recruit-api/internal/shared/storage/docstore"
	"recruit-api/internal/shared/validation"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs", h.create)
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.get)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.ValidationError(c, http.StatusUnprocessableEntity, validation.FromDecodeError(err))
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.JobIDKey, job.ID.Hex())
	respond.ID(c, job.ID.Hex())
}

func (h *Handler) list(c *gin.Context) {
	jobs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, jobs)
}

func (h *Handler) get(c *gin.Context) {
	c.Set(middleware.JobIDKey, c.Param("id"))
	job, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, job)
}

func writeError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		respond.ValidationError(c, http.StatusUnprocessableEntity, verr)
	case errors.Is(err, ids.ErrMalformed):
		respond.Error(c, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "Job not found")
	case errors.Is(err, docstore.ErrUnavailable):
		respond.Error(c, http.StatusInternalServerError, "Database not available")
	default:
		respond.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
