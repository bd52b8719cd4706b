package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careercoach-backend/internal/gaps"
	"careercoach-backend/internal/matching"
	"careercoach-backend/internal/services/health"
	"careercoach-backend/internal/shared/config"
	"careercoach-backend/internal/shared/metrics"
	"careercoach-backend/internal/shared/server/middleware"
	"careercoach-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers wired by bootstrap.
type RouterDeps struct {
	Config       config.Config
	Health       *health.Service
	MatchHandler *matching.Handler
	GapHandler   *gaps.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor:     rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT":    {Rate: 5, Burst: 20},
				"EVALUATION": {Rate: 10, Burst: 40},
			},
		}),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())
	if deps.MatchHandler != nil {
		deps.MatchHandler.RegisterRoutes(api)
	}
	if deps.GapHandler != nil {
		deps.GapHandler.RegisterRoutes(api)
	}

	return r
}

// Evaluation endpoints are read-heavy and cache-backed, so they get a
// higher budget than the default group.
func rateLimitGroup(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/match/score", "/api/v1/match/rank", "/api/v1/jobs/similar":
		return "EVALUATION"
	default:
		return "DEFAULT"
	}
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
