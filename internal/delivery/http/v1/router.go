package v1

import (
	"net/http"
	"time"

	"outreach-backend/config"
	"outreach-backend/internal/delivery/http/middleware"
	"outreach-backend/internal/delivery/http/response"
	"outreach-backend/internal/domain"
	"outreach-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	OfferUC     domain.OfferUsecase
	ResponseUC  domain.ResponseUsecase
	CandidateUC domain.CandidateUsecase
	ActivityUC  domain.ActivityUsecase
	Limiter     *ratelimit.Limiter
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.PublicBaseURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.SecurityHeadersMiddleware())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes, rate limited per caller IP
	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	limits := map[string]gin.HandlerFunc{
		"accept":  middleware.RateLimitMiddleware(deps.Limiter, middleware.AcceptRateLimitConfig(deps.Config.AcceptRateLimit, window)),
		"decline": middleware.RateLimitMiddleware(deps.Limiter, middleware.DeclineRateLimitConfig(deps.Config.DeclineRateLimit, window)),
		"inquiry": middleware.RateLimitMiddleware(deps.Limiter, middleware.InquiryRateLimitConfig(deps.Config.InquiryRateLimit, window)),
	}
	NewOfferHandler(v1, deps.OfferUC)
	NewRespondHandler(v1, deps.ResponseUC, limits)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.Config))
	{
		NewCandidateHandler(admin, deps.CandidateUC, deps.Config.PublicBaseURL)
		NewActivityHandler(admin, deps.ActivityUC)
	}

	return r
}
