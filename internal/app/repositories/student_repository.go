package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pradeep/vidyapith/internal/app/models"
	"github.com/pradeep/vidyapith/internal/pkg/apperrors"
)

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Upsert inserts the student profile for an account or updates the
// existing row. One account owns at most one student record
// (students_account_id_key).
func (r *StudentRepository) Upsert(ctx context.Context, student *models.Student) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (
			account_id, full_name, email, stream, passing_year, board,
			school_name, percentage, roll, citizenship, state, address,
			pin_code, caste, message
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (account_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			stream = EXCLUDED.stream,
			passing_year = EXCLUDED.passing_year,
			board = EXCLUDED.board,
			school_name = EXCLUDED.school_name,
			percentage = EXCLUDED.percentage,
			roll = EXCLUDED.roll,
			citizenship = EXCLUDED.citizenship,
			state = EXCLUDED.state,
			address = EXCLUDED.address,
			pin_code = EXCLUDED.pin_code,
			caste = EXCLUDED.caste,
			message = EXCLUDED.message,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		student.AccountID, student.FullName, student.Email, student.Stream,
		student.PassingYear, student.Board, student.SchoolName, student.Percentage,
		student.Roll, student.Citizenship, student.State, student.Address,
		student.PinCode, student.Caste, student.Message).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error upserting student: %w", err)
	}

	return nil
}

// GetByAccountID retrieves the student profile owned by an account
func (r *StudentRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT id, account_id, full_name, email, stream, passing_year, board,
		       school_name, percentage, roll, citizenship, state, address,
		       pin_code, caste, message, created_at, updated_at
		FROM students
		WHERE account_id = $1`,
		accountID).Scan(
		&student.ID, &student.AccountID, &student.FullName, &student.Email,
		&student.Stream, &student.PassingYear, &student.Board, &student.SchoolName,
		&student.Percentage, &student.Roll, &student.Citizenship, &student.State,
		&student.Address, &student.PinCode, &student.Caste, &student.Message,
		&student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// ListAll retrieves every submitted student profile, newest first
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, account_id, full_name, email, stream, passing_year, board,
		       school_name, percentage, roll, citizenship, state, address,
		       pin_code, caste, message, created_at, updated_at
		FROM students
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID, &student.AccountID, &student.FullName, &student.Email,
			&student.Stream, &student.PassingYear, &student.Board, &student.SchoolName,
			&student.Percentage, &student.Roll, &student.Citizenship, &student.State,
			&student.Address, &student.PinCode, &student.Caste, &student.Message,
			&student.CreatedAt, &student.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
