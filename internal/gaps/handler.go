package gaps

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careercoach-backend/internal/matching"
	"careercoach-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/gaps/analyze", h.analyze)
}

type analyzeRequest struct {
	Profile     matching.Profile `json:"profile"`
	Target      Target           `json:"target"`
	CareerLevel string           `json:"careerLevel"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "invalid request body", err.Error())
		return
	}
	result, err := h.Svc.Analyze(c.Request.Context(), req.Profile, req.Target, req.CareerLevel)
	if err != nil {
		if errors.Is(err, ErrInvalidTarget) {
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze gaps", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"evaluationId": uuid.NewString(),
		"result":       result,
	})
}
