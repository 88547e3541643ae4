package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pradeep/vidyapith/internal/app/models/dto"
	"github.com/pradeep/vidyapith/internal/app/services"
	"github.com/pradeep/vidyapith/internal/middleware"
)

// ContactController handles the contact form
type ContactController struct {
	contactService *services.ContactService
	logger         zerolog.Logger
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService, logger zerolog.Logger) *ContactController {
	return &ContactController{
		contactService: contactService,
		logger:         logger,
	}
}

// Send handles a contact-form message
// @Summary Send a contact message
// @Description Forwards the visitor's message to the school admin mailbox. Replies go to the submitted email address.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact message"
// @Success 200 {object} dto.APIResponse "Your message has been sent successfully!"
// @Failure 400 {object} dto.ErrorResponse "A required field is missing"
// @Failure 502 {object} dto.ErrorResponse "Email dispatch failed"
// @Router /contact [post]
func (c *ContactController) Send(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid contact request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Name, email, subject and message are required").
			WithSeverity(dto.ErrorSeverityWarning)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.contactService.Send(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Your message has been sent successfully!",
	})
}
