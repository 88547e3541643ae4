// Package services contains the business workflows behind the HTTP layer.
package services

import (
	"context"

	"github.com/pradeep/vidyapith/internal/app/models"
)

// AccountStore is the credential persistence needed by AuthService
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}

// SessionStore is the session persistence needed by AuthService
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Revoke(ctx context.Context, id string) error
}

// StudentStore is the profile persistence needed by SubmissionService
type StudentStore interface {
	Upsert(ctx context.Context, student *models.Student) error
	GetByAccountID(ctx context.Context, accountID int64) (*models.Student, error)
	ListAll(ctx context.Context) ([]*models.Student, error)
}

// DocumentStore is the upload-metadata persistence needed by SubmissionService
type DocumentStore interface {
	Create(ctx context.Context, doc *models.Document) error
	ListByStudentID(ctx context.Context, studentID int64) ([]*models.Document, error)
}

// FileStore saves uploaded file bytes and cleans them up on failure
type FileStore interface {
	Save(data []byte, originalName string) (string, error)
	Delete(storedPath string) error
}
