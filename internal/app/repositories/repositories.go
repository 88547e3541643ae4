package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances
type Repositories struct {
	AccountRepository  *AccountRepository
	SessionRepository  *SessionRepository
	StudentRepository  *StudentRepository
	DocumentRepository *DocumentRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AccountRepository:  NewAccountRepository(db),
		SessionRepository:  NewSessionRepository(db),
		StudentRepository:  NewStudentRepository(db),
		DocumentRepository: NewDocumentRepository(db),
	}
}
