package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
	"github.com/aliskhannn/netquiz/internal/infra/postgres"
)

const schemaQuestions = `
	CREATE TABLE IF NOT EXISTS questions (
		position       INTEGER PRIMARY KEY,
		name           TEXT    NOT NULL UNIQUE,
		prompt         TEXT    NOT NULL,
		options        TEXT[]  NOT NULL,
		correct_answer TEXT    NOT NULL
	)
`

// QuestionRepository provides access to the question dataset in the database.
type QuestionRepository struct {
	db postgres.DBTX
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(db postgres.DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// EnsureSchema creates the questions table if it does not exist.
func (r *QuestionRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaQuestions); err != nil {
		return fmt.Errorf("create questions table: %w", err)
	}
	return nil
}

// GetAll returns every question ordered by its dataset position.
func (r *QuestionRepository) GetAll(ctx context.Context) ([]*entities.Question, error) {
	query := `
		SELECT name, prompt, options, correct_answer
		FROM questions
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	questions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entities.Question, error) {
		var q entities.Question
		if err := row.Scan(&q.Name, &q.Prompt, &q.Options, &q.CorrectAnswer); err != nil {
			return nil, err
		}
		return &q, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan questions: %w", err)
	}

	return questions, nil
}

// ReplaceAll deletes every stored question and inserts questions in order.
// Run it within a transaction so readers never observe a partial dataset.
func (r *QuestionRepository) ReplaceAll(ctx context.Context, questions []*entities.Question) (int, error) {
	if _, err := r.db.Exec(ctx, `DELETE FROM questions`); err != nil {
		return 0, fmt.Errorf("delete questions: %w", err)
	}

	query := `
		INSERT INTO questions (position, name, prompt, options, correct_answer)
		VALUES ($1, $2, $3, $4, $5)
	`

	for i, q := range questions {
		if _, err := r.db.Exec(ctx, query, i+1, q.Name, q.Prompt, q.Options, q.CorrectAnswer); err != nil {
			return i, fmt.Errorf("insert question %q: %w", q.Name, err)
		}
	}

	return len(questions), nil
}
