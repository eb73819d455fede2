package v1

import (
	"log"

	"crewmatch/internal/config"
	"crewmatch/internal/database"
	"crewmatch/internal/delivery/http/handler"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/infrastructure/agentsearch"
	"crewmatch/internal/infrastructure/cache"
	"crewmatch/internal/pkg/jwt"
	"crewmatch/internal/repository"
	"crewmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redisCache *cache.Redis, agent *agentsearch.Client, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)

	var searchCache usecase.SearchCache
	if redisCache != nil {
		searchCache = redisCache
	}

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	searchUC := usecase.NewJobSearchUsecase(candidateRepo, jobRepo, searchCache, logger)
	fitUC := usecase.NewJobFitUsecase(candidateRepo, jobRepo)
	profileUC := usecase.NewCandidateProfileUsecase(candidateRepo)
	agentUC := usecase.NewAgentSearchUsecase(agent, jobRepo)

	authHandler := handler.NewAuthHandler(authUC)
	jobsHandler := handler.NewJobsHandler(searchUC, fitUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	agentHandler := handler.NewAgentSearchHandler(agentUC)
	syncHandler := handler.NewSyncCompletedHandler(cfg, redisCache, logger)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	// Webhook auth is the internal token header, not a bearer token.
	r.Post("/internal/sync/completed", syncHandler.HandleSyncCompleted)

	protected := r.Group("", authMw.Middleware())

	jobsGroup := protected.Group("/jobs")
	jobsHandler.RegisterRoutes(jobsGroup)

	candidatesGroup := protected.Group("/candidates")
	profileHandler.RegisterRoutes(candidatesGroup)

	agentGroup := protected.Group("/agent")
	agentHandler.RegisterRoutes(agentGroup)
}
