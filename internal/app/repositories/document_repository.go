package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pradeep/vidyapith/internal/app/models"
)

// DocumentRepository handles uploaded-document metadata operations
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a new document row
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO documents (student_id, file_name, file_path, file_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uploaded_at`,
		doc.StudentID, doc.FileName, doc.FilePath, doc.FileType).
		Scan(&doc.ID, &doc.UploadedAt)

	if err != nil {
		return fmt.Errorf("error creating document: %w", err)
	}

	return nil
}

// ListByStudentID retrieves all documents uploaded for a student
func (r *DocumentRepository) ListByStudentID(ctx context.Context, studentID int64) ([]*models.Document, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, file_name, file_path, file_type, uploaded_at
		FROM documents
		WHERE student_id = $1
		ORDER BY uploaded_at DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		if err := rows.Scan(&doc.ID, &doc.StudentID, &doc.FileName, &doc.FilePath, &doc.FileType, &doc.UploadedAt); err != nil {
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}
