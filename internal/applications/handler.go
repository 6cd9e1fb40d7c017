package applications

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

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.create)
	rg.GET("/applications", h.list)
	rg.GET("/applications/:id", h.get)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.ValidationError(c, http.StatusUnprocessableEntity, validation.FromDecodeError(err))
		return
	}
	c.Set(middleware.JobIDKey, req.JobID)

	app, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.ApplicationIDKey, app.ID.Hex())
	if app.CandidateID != nil {
		c.Set(middleware.CandidateIDKey, *app.CandidateID)
	}
	respond.ID(c, app.ID.Hex())
}

func (h *Handler) list(c *gin.Context) {
	filter := ListFilter{
		JobID:  c.Query("job_id"),
		Status: c.Query("status"),
	}
	if filter.JobID != "" {
		c.Set(middleware.JobIDKey, filter.JobID)
	}
	out, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	c.Set(middleware.ApplicationIDKey, c.Param("id"))
	app, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, app)
}

func writeError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		respond.ValidationError(c, http.StatusUnprocessableEntity, verr)
	case errors.Is(err, ids.ErrMalformed):
		respond.Error(c, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, ErrJobNotFound):
		respond.Error(c, http.StatusNotFound, "Job not found for application")
	case errors.Is(err, ErrCandidateNotFound):
		respond.Error(c, http.StatusNotFound, "Candidate not found")
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "Application not found")
	case errors.Is(err, docstore.ErrUnavailable):
		respond.Error(c, http.StatusInternalServerError, "Database not available")
	default:
		respond.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
