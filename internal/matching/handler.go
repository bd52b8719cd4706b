package matching

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careercoach-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match/score", h.score)
	rg.POST("/match/rank", h.rank)
	rg.POST("/jobs/similar", h.similar)
}

type scoreRequest struct {
	Profile Profile    `json:"profile"`
	Job     JobPosting `json:"job"`
}

type rankRequest struct {
	Profile Profile      `json:"profile"`
	Jobs    []JobPosting `json:"jobs"`
	Limit   int          `json:"limit"`
	Filters *Filters     `json:"filters"`
}

type similarRequest struct {
	Title string       `json:"title"`
	Jobs  []JobPosting `json:"jobs"`
	Limit int          `json:"limit"`
}

func (h *Handler) score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "invalid request body", err.Error())
		return
	}
	result, err := h.Svc.Score(c.Request.Context(), req.Profile, req.Job)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to score job", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"evaluationId": uuid.NewString(),
		"result":       result,
	})
}

func (h *Handler) rank(c *gin.Context) {
	var req rankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "invalid request body", err.Error())
		return
	}
	results, err := h.Svc.Rank(c.Request.Context(), req.Profile, req.Jobs, req.Limit, req.Filters)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to rank jobs", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"evaluationId": uuid.NewString(),
		"results":      results,
	})
}

func (h *Handler) similar(c *gin.Context) {
	var req similarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "invalid request body", err.Error())
		return
	}
	if req.Title == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_input", "title is required", nil)
		return
	}
	jobs, err := h.Svc.Similar(c.Request.Context(), req.Title, req.Jobs, req.Limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to find similar jobs", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"jobs": jobs})
}
