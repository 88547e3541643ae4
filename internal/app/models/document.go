package models

import "time"

// Document defines uploaded-file metadata based on the 'documents' table.
// File bytes live on disk under the configured storage path; only the
// stored name and declared content type are kept here.
type Document struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	FileName   string    `json:"fileName" db:"file_name"`
	FilePath   string    `json:"filePath" db:"file_path"`
	FileType   string    `json:"fileType" db:"file_type"` // MIME type as declared by the client
	UploadedAt time.Time `json:"uploadedAt" db:"uploaded_at"`
}
