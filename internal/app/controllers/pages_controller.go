package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pradeep/vidyapith/internal/app/models/dto"
)

// PagesController serves the public informational pages
type PagesController struct{}

// NewPagesController creates a new PagesController
func NewPagesController() *PagesController {
	return &PagesController{}
}

// Home serves the landing page content
// @Summary Landing page
// @Tags pages
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router / [get]
func (c *PagesController) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Welcome to Vidyapith",
	})
}

// About serves the about-page content
// @Summary About page
// @Description Returns the staff roster, headmaster message and media gallery.
// @Tags pages
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AboutPage}
// @Router /about [get]
func (c *PagesController) About(ctx *gin.Context) {
	page := dto.AboutPage{
		Staff: []dto.StaffMember{
			{Name: "Mr. Khursid Ali", Role: "Physics Teacher", Photo: "staff/s1.jpeg"},
			{Name: "Mr Birendra Yadav", Role: "Math Teacher", Photo: "staff/s1.jpeg"},
			{Name: "Mrs. Barnali Ma'm", Role: "Chemistry Teacher", Photo: "staff/s1.jpeg"},
		},
		Headmaster: dto.Headmaster{
			Name:    "Sri Santosh Choudhary",
			Message: "Welcome to our school, a place where we are dedicated to cultivating both academic excellence and personal growth. We strive to inspire curiosity, nurture talent, and instill strong values, preparing every student to succeed with confidence and integrity in an ever-changing world.",
			Photo:   "staff/headmaster.jpg",
		},
		Videos: []string{"videos/v1.mp4", "videos/v2.mp4"},
		Photos: []string{"images/school1.jpg", "images/school2.jpg", "images/school3.jpeg"},
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data:    page,
	})
}

// Achievements serves the achievements-page content
// @Summary Achievements page
// @Tags pages
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /achievements [get]
func (c *PagesController) Achievements(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "School achievements",
	})
}
