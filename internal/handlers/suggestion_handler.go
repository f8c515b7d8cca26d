package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ProjectPilot-2025/portfolio-service/internal/generator"
	"github.com/ProjectPilot-2025/portfolio-service/internal/services"
	"github.com/ProjectPilot-2025/portfolio-service/internal/utils"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

type SuggestionHandler struct {
	BaseHandler
	suggestionService services.SuggestionService
	validator         *validator.Validator
}

func NewSuggestionHandler(
	suggestionService services.SuggestionService,
	validator *validator.Validator,
	logger utils.Logger,
) *SuggestionHandler {
	return &SuggestionHandler{
		BaseHandler:       NewBaseHandler(logger),
		suggestionService: suggestionService,
		validator:         validator,
	}
}

// GenerateSuggestions produces project ideas from the caller's profile
// @Summary Generate suggestions
// @Description Generates project idea candidates from the student profile; nothing is persisted
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body validator.GenerateSuggestionsRequest true "Student profile"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /suggestions/generate [post]
func (h *SuggestionHandler) GenerateSuggestions(c *gin.Context) {
	var req validator.GenerateSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if errs := h.validator.Validate(&req); len(errs) > 0 {
		h.handleServiceError(c, errs)
		return
	}

	profile := generator.Profile{
		Skills:    req.Skills,
		Level:     req.Level,
		Interests: req.Interests,
		TechStack: req.TechStack,
		Duration:  req.Duration,
		Goal:      req.Goal,
	}

	suggestions, err := h.suggestionService.Generate(c.Request.Context(), profile)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: suggestions})
}

// SaveSuggestion persists a generated suggestion for the caller
// @Summary Save suggestion
// @Description Saves a suggestion to the caller's portfolio
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body services.CreateSuggestionRequest true "Suggestion data"
// @Success 201 {object} models.Suggestion
// @Failure 400 {object} ErrorResponse
// @Router /suggestions [post]
func (h *SuggestionHandler) SaveSuggestion(c *gin.Context) {
	var req services.CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	suggestion, err := h.suggestionService.Save(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, suggestion)
}

// ListSuggestions returns the caller's saved suggestions
// @Summary List my suggestions
// @Tags suggestions
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /suggestions/my [get]
func (h *SuggestionHandler) ListSuggestions(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	suggestions, err := h.suggestionService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: suggestions})
}

// UpdateSuggestionStatus moves one of the caller's suggestions to a new status
// @Summary Update suggestion status
// @Description Sets the lifecycle status of a suggestion owned by the caller
// @Tags suggestions
// @Accept json
// @Produce json
// @Param id path uint true "Suggestion ID"
// @Param request body validator.UpdateSuggestionStatusRequest true "New status"
// @Success 200 {object} models.Suggestion
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /suggestions/{id}/status [patch]
func (h *SuggestionHandler) UpdateSuggestionStatus(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req validator.UpdateSuggestionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	suggestion, err := h.suggestionService.UpdateStatus(c.Request.Context(), id, userID, req.Status)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}
