package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ProjectPilot-2025/portfolio-service/internal/services"
	"github.com/ProjectPilot-2025/portfolio-service/internal/utils"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

type SubmissionHandler struct {
	BaseHandler
	submissionService services.SubmissionService
	validator         *validator.Validator
}

func NewSubmissionHandler(
	submissionService services.SubmissionService,
	validator *validator.Validator,
	logger utils.Logger,
) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler:       NewBaseHandler(logger),
		submissionService: submissionService,
		validator:         validator,
	}
}

// CreateSubmission records a project submission for one of the caller's suggestions
// @Summary Create submission
// @Description Submits a completed project against a saved suggestion; the suggestion is marked completed
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body services.CreateSubmissionRequest true "Submission data"
// @Success 201 {object} models.Submission
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req services.CreateSubmissionRequest
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

	h.LogRequest(c, "Creating submission", "suggestion_id", req.SuggestionID, "user_id", userID)

	submission, err := h.submissionService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// ListSubmissions returns the caller's submissions
// @Summary List my submissions
// @Tags submissions
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /submissions/my [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	submissions, err := h.submissionService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: submissions})
}
