package v1

import (
	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	IdentityUC    domain.IdentityUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	CandidateUC   domain.CandidateUsecase
	EmployerUC    domain.EmployerUsecase
	JWKSProvider  *auth.Provider
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	writeLimit := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitWriteThreshold,
		Window: time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
	})

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public job listings; an existing session enriches but is never required
	public := v1.Group("")
	public.Use(middleware.OptionalAuth(deps.JWKSProvider, deps.Config))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.IdentityUC))

	NewAuthHandler(protected, deps.IdentityUC, writeLimit)
	NewJobHandler(public, protected, deps.JobUC, writeLimit)
	NewApplicationHandler(protected, deps.ApplicationUC, writeLimit)
	NewCandidateHandler(protected, deps.CandidateUC, writeLimit)
	NewEmployerHandler(protected, deps.EmployerUC)

	return r
}
