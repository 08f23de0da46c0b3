package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

// QuestionRepository provides access to the question dataset stored in a JSON file.
// The file is read once; the repository never modifies the loaded questions.
type QuestionRepository struct {
	questions []*entities.Question
}

// NewQuestionRepository creates a new QuestionRepository from the JSON file at path.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	questions, err := readQuestions(path)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{questions: questions}, nil
}

// GetAll returns every question in file order.
func (r *QuestionRepository) GetAll(_ context.Context) ([]*entities.Question, error) {
	return r.questions, nil
}

// readQuestions accepts either a bare JSON array or an object with a "questions" array.
func readQuestions(path string) ([]*entities.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}

	var questions []*entities.Question
	if err = json.Unmarshal(data, &questions); err == nil {
		return questions, nil
	}

	var wrapper struct {
		Questions []*entities.Question `json:"questions"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	return wrapper.Questions, nil
}
