package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradeep/vidyapith/internal/app/services"
)

func setupContactRouter(t *testing.T, mailer *captureMailer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewContactService(mailer, "admin@school.test", zerolog.Nop())
	controller := NewContactController(svc, zerolog.Nop())

	router := gin.New()
	router.POST("/contact", controller.Send)
	return router
}

func TestContactSend(t *testing.T) {
	mailer := &captureMailer{}
	router := setupContactRouter(t, mailer)

	body := `{"name":"Ravi","email":"ravi@example.com","subject":"Admission","message":"Hello"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your message has been sent successfully!")

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "New Contact Message: Admission", mailer.sent[0].Subject)
	assert.Equal(t, "ravi@example.com", mailer.sent[0].ReplyTo)
}

func TestContactSendRejectsInvalidPayload(t *testing.T) {
	mailer := &captureMailer{}
	router := setupContactRouter(t, mailer)

	body := `{"name":"Ravi","email":"not-an-email","subject":"x","message":"y"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.sent)
}

func TestAboutPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	pages := NewPagesController()
	router.GET("/about", pages.About)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sri Santosh Choudhary")
	assert.Contains(t, w.Body.String(), "Physics Teacher")
}
