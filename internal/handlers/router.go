package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ProjectPilot-2025/portfolio-service/internal/auth"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/services"
	"github.com/ProjectPilot-2025/portfolio-service/internal/storage"
	"github.com/ProjectPilot-2025/portfolio-service/internal/utils"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

type HandlerManager struct {
	authHandler       *AuthHandler
	suggestionHandler *SuggestionHandler
	submissionHandler *SubmissionHandler
	adminHandler      *AdminHandler
	authMiddleware    *JWTAuthMiddleware
	badges            *storage.BadgeStore
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
	tokens *auth.TokenService,
	badges *storage.BadgeStore,
) *HandlerManager {
	authMiddleware := NewJWTAuthMiddleware(tokens)

	return &HandlerManager{
		authHandler:       NewAuthHandler(serviceManager.Auth(), validator, logger),
		suggestionHandler: NewSuggestionHandler(serviceManager.Suggestion(), validator, logger),
		submissionHandler: NewSubmissionHandler(serviceManager.Submission(), validator, logger),
		adminHandler: NewAdminHandler(
			serviceManager.Admin(), serviceManager.Submission(), badges, validator, logger),
		authMiddleware: authMiddleware,
		badges:         badges,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "portfolio-service",
		})
	})

	// Stored badge files
	router.Static("/uploads", hm.badges.Dir())

	api := router.Group("/api")

	// Public auth routes
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register-request-otp", hm.authHandler.RequestRegisterOtp)
		authRoutes.POST("/register-verify", hm.authHandler.Register)
		authRoutes.POST("/login", hm.authHandler.Login)
		authRoutes.POST("/google", hm.authHandler.GoogleLogin)
		authRoutes.POST("/forgot-password-request", hm.authHandler.ForgotPassword)
		authRoutes.POST("/forgot-password-verify", hm.authHandler.ResetPassword)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(hm.authMiddleware.AuthMiddleware())
	{
		suggestions := authed.Group("/suggestions")
		{
			suggestions.POST("/generate", hm.suggestionHandler.GenerateSuggestions)
			suggestions.POST("", hm.suggestionHandler.SaveSuggestion)
			suggestions.GET("/my", hm.suggestionHandler.ListSuggestions)
			suggestions.PATCH("/:id/status", hm.suggestionHandler.UpdateSuggestionStatus)
		}

		submissions := authed.Group("/submissions")
		{
			submissions.POST("", hm.submissionHandler.CreateSubmission)
			submissions.GET("/my", hm.submissionHandler.ListSubmissions)
		}

		// Admin routes
		admin := authed.Group("/admin")
		admin.Use(hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
		{
			admin.GET("/users", hm.adminHandler.ListUsers)
			admin.GET("/users/export", hm.adminHandler.ExportUsers)
			admin.GET("/users/:id/summary", hm.adminHandler.GetUserSummary)
			admin.DELETE("/users/:id", hm.adminHandler.DeleteUser)
			admin.GET("/submissions", hm.adminHandler.ListAllSubmissions)
			admin.PATCH("/submissions/:id/review", hm.adminHandler.ReviewSubmission)
		}
	}
}
