package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pradeep/vidyapith/internal/app/models/dto"
	"github.com/pradeep/vidyapith/internal/app/services"
	"github.com/pradeep/vidyapith/internal/middleware"
)

// maxMarksheetSize caps uploaded marksheet files at 10 MB
const maxMarksheetSize = 10 << 20

// SubmissionController handles the details form
type SubmissionController struct {
	submissionService *services.SubmissionService
	logger            zerolog.Logger
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService *services.SubmissionService, logger zerolog.Logger) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		logger:            logger,
	}
}

// GetDetails returns the caller's submitted profile
// @Summary Get submitted details
// @Description Returns the previously submitted details and documents for the logged-in account, or an empty response if nothing was submitted yet.
// @Tags details
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /details [get]
func (c *SubmissionController) GetDetails(ctx *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.submissionService.GetDetails(ctx.Request.Context(), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if student == nil {
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Success: true,
			Message: "No details submitted yet",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data:    student,
	})
}

// Submit handles a details-form submission
// @Summary Submit student details
// @Description Saves the fourteen detail fields and the optional marksheet upload, then emails an acknowledgment to the student and an alert to the admin.
// @Tags details
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Full name"
// @Param email formData string true "Email address"
// @Param marksheet_10th formData file false "Class 10 marksheet"
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionReceipt}
// @Failure 400 {object} dto.ErrorResponse "A required field is missing"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 502 {object} dto.ErrorResponse "Email dispatch failed"
// @Router /details [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var form dto.SubmissionForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid submission form payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid form data").
			WithSeverity(dto.ErrorSeverityWarning)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := c.readMarksheet(ctx)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Could not read uploaded file").
			WithField("marksheet_10th").
			WithSeverity(dto.ErrorSeverityWarning)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	receipt, err := c.submissionService.Submit(ctx.Request.Context(), accountID, &form, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: receipt.Message,
		Data:    receipt,
	})
}

// readMarksheet reads the optional upload into memory. A missing file
// part is not an error; the workflow treats it as no attachment.
func (c *SubmissionController) readMarksheet(ctx *gin.Context) (*services.UploadedFile, error) {
	header, err := ctx.FormFile("marksheet_10th")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	if header.Filename == "" {
		return nil, nil
	}

	opened, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer opened.Close()

	data, err := io.ReadAll(io.LimitReader(opened, maxMarksheetSize))
	if err != nil {
		return nil, err
	}

	return &services.UploadedFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
