// Package bootstrap wires configuration, storage, the taxonomy and the
// evaluation services into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"careercoach-backend/internal/cache"
	"careercoach-backend/internal/extract"
	"careercoach-backend/internal/gaps"
	"careercoach-backend/internal/matching"
	"careercoach-backend/internal/resources"
	"careercoach-backend/internal/services/health"
	"careercoach-backend/internal/shared/config"
	"careercoach-backend/internal/shared/server"
	"careercoach-backend/internal/shared/storage/db"
	"careercoach-backend/internal/skills"
	"careercoach-backend/internal/taxonomy"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	Taxonomy  *taxonomy.Index
	Matcher   *skills.Matcher
	Extractor *extract.Extractor
	Resources *resources.Lookup
	Cache     *cache.Cache

	MatchService *matching.Service
	GapService   *gaps.Service
	MatchHandler *matching.Handler
	GapHandler   *gaps.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var taxonomySource taxonomy.Source
	var resourceRepo resources.Repo
	if sqlDB != nil {
		taxonomySource = &taxonomy.PGSource{DB: sqlDB}
		resourceRepo = &resources.PGRepo{DB: sqlDB}
	}
	ix := taxonomy.LoadIndex(ctx, taxonomySource)
	lookup := resources.Load(ctx, resourceRepo)

	var sim skills.SimilarityIndex
	if cfg.SimilarityEnabled {
		sim = skills.NewTFIndex(ix.Vocabulary(), cfg.SimilarityThreshold)
	}
	norm := skills.NewNormalizer()
	matcher := skills.NewMatcher(norm, sim)
	extractor := extract.New(ix, norm)

	resultCache := cache.New()
	matchSvc := matching.NewService(matching.NewScorer(ix, matcher, extractor), resultCache, cfg.CacheTTL)
	gapSvc := gaps.NewService(gaps.NewAnalyzer(ix, matcher, extractor, lookup), resultCache, cfg.CacheTTL)

	app := &App{
		Config:       cfg,
		DB:           sqlDB,
		Taxonomy:     ix,
		Matcher:      matcher,
		Extractor:    extractor,
		Resources:    lookup,
		Cache:        resultCache,
		MatchService: matchSvc,
		GapService:   gapSvc,
		MatchHandler: matching.NewHandler(matchSvc),
		GapHandler:   gaps.NewHandler(gapSvc),
	}

	healthSvc := health.NewService()
	healthSvc.Env = cfg.Env
	healthSvc.DBConnected = sqlDB != nil

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       cfg,
		Health:       healthSvc,
		MatchHandler: app.MatchHandler,
		GapHandler:   app.GapHandler,
	})

	return app, nil
}

// buildDB connects to Postgres when DATABASE_URL is set. Dev-like
// environments degrade to the built-in taxonomy instead of failing.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using built-in taxonomy")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using built-in taxonomy: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
