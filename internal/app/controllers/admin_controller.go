package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pradeep/vidyapith/internal/app/models/dto"
	"github.com/pradeep/vidyapith/internal/app/services"
	"github.com/pradeep/vidyapith/internal/middleware"
)

// AdminController exposes admin-only views over submitted records
type AdminController struct {
	submissionService *services.SubmissionService
	logger            zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(submissionService *services.SubmissionService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		submissionService: submissionService,
		logger:            logger,
	}
}

// ListSubmissions lists every submitted student profile
// @Summary List all submissions
// @Description Returns all submitted student profiles with their documents, newest update first.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/submissions [get]
func (c *AdminController) ListSubmissions(ctx *gin.Context) {
	students, err := c.submissionService.ListSubmissions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data:    gin.H{"submissions": students, "count": len(students)},
	})
}
