package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pradeep/vidyapith/internal/app/models"
	"github.com/pradeep/vidyapith/internal/app/models/dto"
	"github.com/pradeep/vidyapith/internal/pkg/apperrors"
	"github.com/pradeep/vidyapith/internal/pkg/mail"
)

// Submission receipt messages
const (
	receiptWithFile = "Details & marksheet submitted successfully. Confirmation email sent"
	receiptNoFile   = "Details submitted successfully (no file attached). Confirmation email sent"

	noFileNote = "(Note: No marksheet file attached.)"
)

// UploadedFile carries an uploaded marksheet through the workflow
type UploadedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SubmissionService runs the details form pipeline: validate, persist the
// student record, then dispatch the acknowledgment and admin alert emails.
type SubmissionService struct {
	students   StudentStore
	documents  DocumentStore
	files      FileStore
	mailer     mail.Mailer
	adminEmail string
	logger     zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(
	students StudentStore,
	documents DocumentStore,
	files FileStore,
	mailer mail.Mailer,
	adminEmail string,
	logger zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		students:   students,
		documents:  documents,
		files:      files,
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Submit processes one details-form submission for the authenticated
// account. Both emails are sent synchronously, acknowledgment first; a
// sent acknowledgment is not retracted if the admin alert then fails.
func (s *SubmissionService) Submit(ctx context.Context, accountID int64, form *dto.SubmissionForm, file *UploadedFile) (*dto.SubmissionReceipt, error) {
	trimForm(form)
	if err := validateForm(form); err != nil {
		return nil, err
	}

	hasFile := file != nil && file.Filename != ""

	student := &models.Student{
		AccountID:   accountID,
		FullName:    form.Name,
		Email:       form.Email,
		Stream:      form.Stream,
		PassingYear: form.PassingYear,
		Board:       form.Board,
		SchoolName:  form.SchoolName,
		Percentage:  form.Percentage,
		Roll:        form.Roll,
		Citizenship: form.Citizenship,
		State:       form.State,
		Address:     form.Address,
		PinCode:     form.PinCode,
		Caste:       form.Caste,
		Message:     form.Message,
	}
	if err := s.students.Upsert(ctx, student); err != nil {
		return nil, fmt.Errorf("error saving student record: %w", err)
	}

	if hasFile {
		storedPath, err := s.files.Save(file.Data, file.Filename)
		if err != nil {
			return nil, fmt.Errorf("error storing marksheet: %w", err)
		}
		doc := &models.Document{
			StudentID: student.ID,
			FileName:  file.Filename,
			FilePath:  storedPath,
			FileType:  file.ContentType,
		}
		if err := s.documents.Create(ctx, doc); err != nil {
			// don't leave orphaned bytes on disk
			_ = s.files.Delete(storedPath)
			return nil, fmt.Errorf("error saving document record: %w", err)
		}
	}

	ack := s.composeAcknowledgment(form)
	alert := s.composeAdminAlert(form, file, hasFile)

	if err := s.mailer.Send(ctx, ack); err != nil {
		s.logger.Error().Err(err).Str("to", form.Email).Msg("Failed to dispatch acknowledgment email")
		return nil, fmt.Errorf("%w: acknowledgment email: %v", apperrors.ErrDispatchFailed, err)
	}
	if err := s.mailer.Send(ctx, alert); err != nil {
		s.logger.Error().Err(err).Str("to", s.adminEmail).Msg("Failed to dispatch admin alert email")
		return nil, fmt.Errorf("%w: admin alert email: %v", apperrors.ErrDispatchFailed, err)
	}

	s.logger.Info().
		Int64("accountID", accountID).
		Int64("studentID", student.ID).
		Bool("fileAttached", hasFile).
		Msg("Details submission processed")

	receipt := &dto.SubmissionReceipt{Message: receiptNoFile, FileAttached: false}
	if hasFile {
		receipt = &dto.SubmissionReceipt{Message: receiptWithFile, FileAttached: true}
	}
	return receipt, nil
}

// GetDetails returns the previously submitted profile with its documents,
// or nil when the account has not submitted yet.
func (s *SubmissionService) GetDetails(ctx context.Context, accountID int64) (*models.Student, error) {
	student, err := s.students.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, nil
		}
		return nil, err
	}

	docs, err := s.documents.ListByStudentID(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	student.Documents = docs

	return student, nil
}

// ListSubmissions returns every submitted profile with documents attached
func (s *SubmissionService) ListSubmissions(ctx context.Context) ([]*models.Student, error) {
	students, err := s.students.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, student := range students {
		docs, err := s.documents.ListByStudentID(ctx, student.ID)
		if err != nil {
			return nil, err
		}
		student.Documents = docs
	}

	return students, nil
}

func (s *SubmissionService) composeAcknowledgment(form *dto.SubmissionForm) *mail.Message {
	return &mail.Message{
		Subject: "We Received Your Details",
		To:      []string{form.Email},
		Body: fmt.Sprintf("Hello %s,\n\n"+
			"Your details and document submission were received successfully.\n"+
			"We'll get back to you soon!\n\n"+
			"- Team Admin", form.Name),
	}
}

func (s *SubmissionService) composeAdminAlert(form *dto.SubmissionForm, file *UploadedFile, hasFile bool) *mail.Message {
	var body strings.Builder
	body.WriteString("New submission received:\n\n")
	for _, entry := range []struct{ label, value string }{
		{"Name", form.Name},
		{"Email", form.Email},
		{"Message", form.Message},
		{"Stream", form.Stream},
		{"Passing year", form.PassingYear},
		{"Board", form.Board},
		{"School name", form.SchoolName},
		{"Percentage", form.Percentage},
		{"Citizenship", form.Citizenship},
		{"State", form.State},
		{"Address", form.Address},
		{"Pin code", form.PinCode},
		{"Caste", form.Caste},
		{"Roll", form.Roll},
	} {
		fmt.Fprintf(&body, "%s: %s\n", entry.label, entry.value)
	}

	alert := &mail.Message{
		Subject: fmt.Sprintf("New Submission from %s", form.Name),
		To:      []string{s.adminEmail},
	}

	if hasFile {
		alert.Attach(file.Filename, file.ContentType, file.Data)
	} else {
		fmt.Fprintf(&body, "\n%s\n", noFileNote)
	}
	alert.Body = body.String()

	return alert
}

func trimForm(form *dto.SubmissionForm) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Stream = strings.TrimSpace(form.Stream)
	form.PassingYear = strings.TrimSpace(form.PassingYear)
	form.Board = strings.TrimSpace(form.Board)
	form.SchoolName = strings.TrimSpace(form.SchoolName)
	form.Percentage = strings.TrimSpace(form.Percentage)
	form.Roll = strings.TrimSpace(form.Roll)
	form.Citizenship = strings.TrimSpace(form.Citizenship)
	form.State = strings.TrimSpace(form.State)
	form.Address = strings.TrimSpace(form.Address)
	form.PinCode = strings.TrimSpace(form.PinCode)
	form.Caste = strings.TrimSpace(form.Caste)
	form.Message = strings.TrimSpace(form.Message)
}

// validateForm reports the first missing required field
func validateForm(form *dto.SubmissionForm) error {
	for _, entry := range []struct{ field, value string }{
		{"name", form.Name},
		{"email", form.Email},
		{"stream", form.Stream},
		{"passing_year", form.PassingYear},
		{"board", form.Board},
		{"school_name", form.SchoolName},
		{"percentage", form.Percentage},
		{"roll", form.Roll},
		{"citizenship", form.Citizenship},
		{"state", form.State},
		{"address", form.Address},
		{"pin_code", form.PinCode},
		{"caste", form.Caste},
		{"message", form.Message},
	} {
		if entry.value == "" {
			return apperrors.NewFieldError(entry.field, "")
		}
	}
	return nil
}
