package candidates

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

// RegisterRoutes attaches candidate routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/candidates", h.create)
	rg.GET("/candidates", h.list)
	rg.GET("/candidates/:id", h.get)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.ValidationError(c, http.StatusUnprocessableEntity, validation.FromDecodeError(err))
		return
	}

	candidate, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.CandidateIDKey, candidate.ID.Hex())
	respond.ID(c, candidate.ID.Hex())
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	c.Set(middleware.CandidateIDKey, c.Param("id"))
	candidate, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, candidate)
}

func writeError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		respond.ValidationError(c, http.StatusUnprocessableEntity, verr)
	case errors.Is(err, ids.ErrMalformed):
		respond.Error(c, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "Candidate not found")
	case errors.Is(err, docstore.ErrUnavailable):
		respond.Error(c, http.StatusInternalServerError, "Database not available")
	default:
		respond.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
