package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradeep/vidyapith/internal/app/models"
	"github.com/pradeep/vidyapith/internal/app/services"
	"github.com/pradeep/vidyapith/internal/middleware"
	"github.com/pradeep/vidyapith/internal/pkg/apperrors"
	"github.com/pradeep/vidyapith/internal/pkg/mail"
)

type memStudentStore struct {
	byAccountID map[int64]*models.Student
	nextID      int64
}

func (s *memStudentStore) Upsert(_ context.Context, student *models.Student) error {
	if existing, ok := s.byAccountID[student.AccountID]; ok {
		student.ID = existing.ID
	} else {
		s.nextID++
		student.ID = s.nextID
	}
	student.UpdatedAt = time.Now()
	s.byAccountID[student.AccountID] = student
	return nil
}

func (s *memStudentStore) GetByAccountID(_ context.Context, accountID int64) (*models.Student, error) {
	student, ok := s.byAccountID[accountID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *memStudentStore) ListAll(_ context.Context) ([]*models.Student, error) {
	var students []*models.Student
	for _, student := range s.byAccountID {
		students = append(students, student)
	}
	return students, nil
}

type memDocumentStore struct {
	docs []*models.Document
}

func (s *memDocumentStore) Create(_ context.Context, doc *models.Document) error {
	doc.ID = int64(len(s.docs) + 1)
	s.docs = append(s.docs, doc)
	return nil
}

func (s *memDocumentStore) ListByStudentID(_ context.Context, studentID int64) ([]*models.Document, error) {
	var docs []*models.Document
	for _, doc := range s.docs {
		if doc.StudentID == studentID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

type memFileStore struct {
	saved map[string][]byte
}

func (s *memFileStore) Save(data []byte, originalName string) (string, error) {
	path := fmt.Sprintf("stored-%d-%s", len(s.saved)+1, originalName)
	s.saved[path] = data
	return path, nil
}

func (s *memFileStore) Delete(storedPath string) error {
	delete(s.saved, storedPath)
	return nil
}

type captureMailer struct {
	sent []*mail.Message
}

func (m *captureMailer) Send(_ context.Context, msg *mail.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func setupSubmissionRouter(t *testing.T, mailer mail.Mailer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewSubmissionService(
		&memStudentStore{byAccountID: make(map[int64]*models.Student)},
		&memDocumentStore{},
		&memFileStore{saved: make(map[string][]byte)},
		mailer,
		"admin@school.test",
		zerolog.Nop(),
	)
	controller := NewSubmissionController(svc, zerolog.Nop())

	router := gin.New()
	// Stand-in for the auth gate: inject the account like RequireAuth would
	router.POST("/details", func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, int64(7))
	}, controller.Submit)
	router.GET("/details", func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, int64(7))
	}, controller.GetDetails)

	return router
}

func submissionFormFields() map[string]string {
	return map[string]string{
		"name":         "Pradeep Kumar",
		"email":        "pradeep@example.com",
		"stream":       "Science",
		"passing_year": "2023",
		"board":        "CBSE",
		"school_name":  "City High School",
		"percentage":   "87.5",
		"roll":         "1024",
		"citizenship":  "Indian",
		"state":        "Bihar",
		"address":      "12 Station Road",
		"pin_code":     "800001",
		"caste":        "General",
		"message":      "Looking forward to admission.",
	}
}

func buildMultipartRequest(t *testing.T, fields map[string]string, fileData []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	if fileData != nil {
		fw, err := mw.CreateFormFile("marksheet_10th", "marksheet.pdf")
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/details", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSubmitWithMarksheet(t *testing.T) {
	mailer := &captureMailer{}
	router := setupSubmissionRouter(t, mailer)

	fileData := []byte("%PDF-1.4 content")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, buildMultipartRequest(t, submissionFormFields(), fileData))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Details & marksheet submitted successfully. Confirmation email sent", resp.Message)

	require.Len(t, mailer.sent, 2)
	require.Len(t, mailer.sent[1].Attachments, 1)
	assert.Equal(t, "marksheet.pdf", mailer.sent[1].Attachments[0].Filename)
	assert.Equal(t, fileData, mailer.sent[1].Attachments[0].Data)
}

func TestSubmitWithoutMarksheet(t *testing.T) {
	mailer := &captureMailer{}
	router := setupSubmissionRouter(t, mailer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, buildMultipartRequest(t, submissionFormFields(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no file attached")

	require.Len(t, mailer.sent, 2)
	assert.Contains(t, mailer.sent[1].Body, "(Note: No marksheet file attached.)")
}

func TestSubmitMissingFieldReturns400(t *testing.T) {
	mailer := &captureMailer{}
	router := setupSubmissionRouter(t, mailer)

	fields := submissionFormFields()
	delete(fields, "board")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, buildMultipartRequest(t, fields, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "board")
	assert.Empty(t, mailer.sent)
}

func TestGetDetailsBeforeAndAfterSubmit(t *testing.T) {
	mailer := &captureMailer{}
	router := setupSubmissionRouter(t, mailer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/details", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No details submitted yet")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, buildMultipartRequest(t, submissionFormFields(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/details", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pradeep Kumar")
}
