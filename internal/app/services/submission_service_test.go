package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradeep/vidyapith/internal/app/models"
	"github.com/pradeep/vidyapith/internal/app/models/dto"
	"github.com/pradeep/vidyapith/internal/pkg/apperrors"
	"github.com/pradeep/vidyapith/internal/pkg/mail"
)

type fakeStudentStore struct {
	byAccountID map[int64]*models.Student
	nextID      int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{byAccountID: make(map[int64]*models.Student), nextID: 1}
}

func (s *fakeStudentStore) Upsert(_ context.Context, student *models.Student) error {
	if existing, ok := s.byAccountID[student.AccountID]; ok {
		student.ID = existing.ID
		student.CreatedAt = existing.CreatedAt
	} else {
		student.ID = s.nextID
		s.nextID++
		student.CreatedAt = time.Now()
	}
	student.UpdatedAt = time.Now()
	s.byAccountID[student.AccountID] = student
	return nil
}

func (s *fakeStudentStore) GetByAccountID(_ context.Context, accountID int64) (*models.Student, error) {
	student, ok := s.byAccountID[accountID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *fakeStudentStore) ListAll(_ context.Context) ([]*models.Student, error) {
	var students []*models.Student
	for _, student := range s.byAccountID {
		students = append(students, student)
	}
	return students, nil
}

type fakeDocumentStore struct {
	docs      []*models.Document
	createErr error
}

func (s *fakeDocumentStore) Create(_ context.Context, doc *models.Document) error {
	if s.createErr != nil {
		return s.createErr
	}
	doc.ID = int64(len(s.docs) + 1)
	doc.UploadedAt = time.Now()
	s.docs = append(s.docs, doc)
	return nil
}

func (s *fakeDocumentStore) ListByStudentID(_ context.Context, studentID int64) ([]*models.Document, error) {
	var docs []*models.Document
	for _, doc := range s.docs {
		if doc.StudentID == studentID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

type fakeFileStore struct {
	saved   map[string][]byte
	deleted []string
	nextID  int
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{saved: make(map[string][]byte)}
}

func (s *fakeFileStore) Save(data []byte, originalName string) (string, error) {
	s.nextID++
	path := fmt.Sprintf("stored-%d-%s", s.nextID, originalName)
	s.saved[path] = data
	return path, nil
}

func (s *fakeFileStore) Delete(storedPath string) error {
	delete(s.saved, storedPath)
	s.deleted = append(s.deleted, storedPath)
	return nil
}

// recordingMailer captures sent messages in order
type recordingMailer struct {
	sent    []*mail.Message
	failOn  int // 1-based index of the Send call that fails; 0 means never
	sendErr error
}

func (m *recordingMailer) Send(_ context.Context, msg *mail.Message) error {
	if m.failOn > 0 && len(m.sent)+1 == m.failOn {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

func validForm() *dto.SubmissionForm {
	return &dto.SubmissionForm{
		Name:        "Pradeep Kumar",
		Email:       "pradeep@example.com",
		Stream:      "Science",
		PassingYear: "2023",
		Board:       "CBSE",
		SchoolName:  "City High School",
		Percentage:  "87.5",
		Roll:        "1024",
		Citizenship: "Indian",
		State:       "Bihar",
		Address:     "12 Station Road",
		PinCode:     "800001",
		Caste:       "General",
		Message:     "Looking forward to admission.",
	}
}

func newTestSubmissionService(students *fakeStudentStore, docs *fakeDocumentStore, files *fakeFileStore, mailer mail.Mailer) *SubmissionService {
	return NewSubmissionService(students, docs, files, mailer, "admin@school.test", zerolog.Nop())
}

func TestSubmissionServiceSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("with file sends both emails and attaches the marksheet", func(t *testing.T) {
		students := newFakeStudentStore()
		docs := &fakeDocumentStore{}
		files := newFakeFileStore()
		mailer := &recordingMailer{}
		svc := newTestSubmissionService(students, docs, files, mailer)

		fileData := []byte("%PDF-1.4 marksheet content")
		receipt, err := svc.Submit(ctx, 7, validForm(), &UploadedFile{
			Filename:    "marksheet.pdf",
			ContentType: "application/pdf",
			Data:        fileData,
		})
		require.NoError(t, err)

		assert.True(t, receipt.FileAttached)
		assert.Equal(t, "Details & marksheet submitted successfully. Confirmation email sent", receipt.Message)

		require.Len(t, mailer.sent, 2)

		ack := mailer.sent[0]
		assert.Equal(t, "We Received Your Details", ack.Subject)
		assert.Equal(t, []string{"pradeep@example.com"}, ack.To)
		assert.Contains(t, ack.Body, "Hello Pradeep Kumar,")
		assert.Empty(t, ack.Attachments)

		alert := mailer.sent[1]
		assert.Equal(t, "New Submission from Pradeep Kumar", alert.Subject)
		assert.Equal(t, []string{"admin@school.test"}, alert.To)
		assert.Contains(t, alert.Body, "School name: City High School")
		assert.NotContains(t, alert.Body, "No marksheet file attached")
		require.Len(t, alert.Attachments, 1)
		assert.Equal(t, "marksheet.pdf", alert.Attachments[0].Filename)
		assert.Equal(t, fileData, alert.Attachments[0].Data)

		// Persisted record and document
		student, err := students.GetByAccountID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Pradeep Kumar", student.FullName)
		require.Len(t, docs.docs, 1)
		assert.Equal(t, student.ID, docs.docs[0].StudentID)
	})

	t.Run("without file notes the missing attachment", func(t *testing.T) {
		mailer := &recordingMailer{}
		svc := newTestSubmissionService(newFakeStudentStore(), &fakeDocumentStore{}, newFakeFileStore(), mailer)

		receipt, err := svc.Submit(ctx, 7, validForm(), nil)
		require.NoError(t, err)

		assert.False(t, receipt.FileAttached)
		assert.Equal(t, "Details submitted successfully (no file attached). Confirmation email sent", receipt.Message)

		require.Len(t, mailer.sent, 2)
		alert := mailer.sent[1]
		assert.Contains(t, alert.Body, "(Note: No marksheet file attached.)")
		assert.Empty(t, alert.Attachments)
	})

	t.Run("first missing field is reported", func(t *testing.T) {
		mailer := &recordingMailer{}
		svc := newTestSubmissionService(newFakeStudentStore(), &fakeDocumentStore{}, newFakeFileStore(), mailer)

		form := validForm()
		form.Stream = "   "
		form.Board = ""

		_, err := svc.Submit(ctx, 7, form, nil)
		require.Error(t, err)

		var fieldErr *apperrors.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "stream", fieldErr.Field)
		assert.Empty(t, mailer.sent)
	})

	t.Run("acknowledgment failure stops dispatch", func(t *testing.T) {
		mailer := &recordingMailer{failOn: 1, sendErr: errors.New("smtp: connection refused")}
		svc := newTestSubmissionService(newFakeStudentStore(), &fakeDocumentStore{}, newFakeFileStore(), mailer)

		_, err := svc.Submit(ctx, 7, validForm(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDispatchFailed)
		assert.Empty(t, mailer.sent)
	})

	t.Run("admin alert failure still surfaces dispatch error", func(t *testing.T) {
		mailer := &recordingMailer{failOn: 2, sendErr: errors.New("smtp: relay denied")}
		svc := newTestSubmissionService(newFakeStudentStore(), &fakeDocumentStore{}, newFakeFileStore(), mailer)

		_, err := svc.Submit(ctx, 7, validForm(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDispatchFailed)
		// The acknowledgment already went out and is not retracted
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "We Received Your Details", mailer.sent[0].Subject)
	})

	t.Run("document insert failure cleans up stored file", func(t *testing.T) {
		docs := &fakeDocumentStore{createErr: errors.New("insert failed")}
		files := newFakeFileStore()
		mailer := &recordingMailer{}
		svc := newTestSubmissionService(newFakeStudentStore(), docs, files, mailer)

		_, err := svc.Submit(ctx, 7, validForm(), &UploadedFile{
			Filename: "marksheet.pdf",
			Data:     []byte("data"),
		})
		require.Error(t, err)
		assert.Empty(t, files.saved)
		assert.Len(t, files.deleted, 1)
		assert.Empty(t, mailer.sent)
	})

	t.Run("resubmission updates the same student record", func(t *testing.T) {
		students := newFakeStudentStore()
		svc := newTestSubmissionService(students, &fakeDocumentStore{}, newFakeFileStore(), &recordingMailer{})

		_, err := svc.Submit(ctx, 7, validForm(), nil)
		require.NoError(t, err)
		firstID := students.byAccountID[7].ID

		form := validForm()
		form.Percentage = "91.2"
		_, err = svc.Submit(ctx, 7, form, nil)
		require.NoError(t, err)

		assert.Equal(t, firstID, students.byAccountID[7].ID)
		assert.Equal(t, "91.2", students.byAccountID[7].Percentage)
	})
}

func TestSubmissionServiceGetDetails(t *testing.T) {
	ctx := context.Background()
	students := newFakeStudentStore()
	docs := &fakeDocumentStore{}
	svc := newTestSubmissionService(students, docs, newFakeFileStore(), &recordingMailer{})

	t.Run("no submission yet returns nil", func(t *testing.T) {
		student, err := svc.GetDetails(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, student)
	})

	t.Run("returns record with documents", func(t *testing.T) {
		_, err := svc.Submit(ctx, 7, validForm(), &UploadedFile{Filename: "m.pdf", Data: []byte("x")})
		require.NoError(t, err)

		student, err := svc.GetDetails(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, student)
		assert.Equal(t, "Pradeep Kumar", student.FullName)
		require.Len(t, student.Documents, 1)
		assert.Equal(t, "m.pdf", student.Documents[0].FileName)
	})
}
