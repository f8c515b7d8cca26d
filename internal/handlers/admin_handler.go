package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ProjectPilot-2025/portfolio-service/internal/services"
	"github.com/ProjectPilot-2025/portfolio-service/internal/storage"
	"github.com/ProjectPilot-2025/portfolio-service/internal/utils"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

type AdminHandler struct {
	BaseHandler
	adminService      services.AdminService
	submissionService services.SubmissionService
	badges            *storage.BadgeStore
	validator         *validator.Validator
}

func NewAdminHandler(
	adminService services.AdminService,
	submissionService services.SubmissionService,
	badges *storage.BadgeStore,
	validator *validator.Validator,
	logger utils.Logger,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:       NewBaseHandler(logger),
		adminService:      adminService,
		submissionService: submissionService,
		badges:            badges,
		validator:         validator,
	}
}

// ListUsers returns all users with their suggestion and submission counts
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: users})
}

// GetUserSummary returns one user with their suggestions and submissions
// @Summary Get user summary
// @Tags admin
// @Produce json
// @Param id path uint true "User ID"
// @Success 200 {object} services.UserSummary
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id}/summary [get]
func (h *AdminHandler) GetUserSummary(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	summary, err := h.adminService.UserSummary(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// DeleteUser removes a user and everything they own
// @Summary Delete user
// @Description Deletes a non-admin user together with their suggestions and submissions
// @Tags admin
// @Produce json
// @Param id path uint true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	actorID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Deleting user", "target_id", id, "actor_id", actorID)

	if err := h.adminService.DeleteUser(c.Request.Context(), actorID, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User and associated data deleted"})
}

// ExportUsers downloads the user dashboard as an xlsx workbook
// @Summary Export users
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /admin/users/export [get]
func (h *AdminHandler) ExportUsers(c *gin.Context) {
	data, err := h.adminService.ExportUsers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("users-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ListAllSubmissions returns every submission with owner and suggestion info
// @Summary List all submissions
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/submissions [get]
func (h *AdminHandler) ListAllSubmissions(c *gin.Context) {
	submissions, err := h.submissionService.ListAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: submissions})
}

// ReviewSubmission upserts the admin review on a submission
// @Summary Review submission
// @Description Stores rating, badge, comments and an optional badge file; reviewing again replaces the previous review
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Submission ID"
// @Param rating formData string false "Rating"
// @Param badge formData string false "Badge name"
// @Param comments formData string false "Comments"
// @Param completionPercent formData string false "Completion percent"
// @Param badgeFile formData file false "Badge file (png, jpeg or pdf)"
// @Success 200 {object} models.Submission
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/submissions/{id}/review [patch]
func (h *AdminHandler) ReviewSubmission(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	adminID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req validator.ReviewSubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid review form",
			Details: err.Error(),
		})
		return
	}

	values, errs := h.validator.GetBusinessValidator().ValidateReview(&req)
	if len(errs) > 0 {
		h.handleServiceError(c, errs)
		return
	}

	var badgeFileURL string
	if fileHeader, err := c.FormFile("badgeFile"); err == nil && fileHeader != nil {
		url, saveErr := h.badges.Save(fileHeader)
		if saveErr != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Badge file rejected",
				Details: saveErr.Error(),
			})
			return
		}
		badgeFileURL = url
	}

	h.LogRequest(c, "Reviewing submission", "submission_id", id, "admin_id", adminID)

	submission, err := h.submissionService.Review(c.Request.Context(), id, adminID, values, badgeFileURL)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}
