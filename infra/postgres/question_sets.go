package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"word-game-service/domain"

	"github.com/google/uuid"
)

const listQuestionSetsQuery = `
	SELECT id, set_name, prompts
	FROM question_sets
	ORDER BY set_name;`

// ListQuestionSets, kayıtlı bütün soru setlerini döndürür.
func (r *Repository) ListQuestionSets(ctx context.Context) ([]domain.QuestionSet, error) {
	rows, err := r.db.QueryContext(ctx, listQuestionSetsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query question sets: %w", err)
	}
	defer rows.Close()

	var sets []domain.QuestionSet
	for rows.Next() {
		var set domain.QuestionSet
		var rawPrompts []byte
		if err := rows.Scan(&set.ID, &set.Name, &rawPrompts); err != nil {
			return nil, fmt.Errorf("failed to scan question set: %w", err)
		}
		if err := json.Unmarshal(rawPrompts, &set.Prompts); err != nil {
			return nil, fmt.Errorf("failed to parse prompts for set '%s': %w", set.Name, err)
		}
		sets = append(sets, set)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return sets, nil
}

// CreateQuestionSet, özel soru setini kaydeder. Set adı benzersizdir.
func (r *Repository) CreateQuestionSet(ctx context.Context, set domain.QuestionSet) (uuid.UUID, error) {
	rawPrompts, err := json.Marshal(set.Prompts)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal prompts: %w", err)
	}

	query := `
		INSERT INTO question_sets (set_name, prompts)
		VALUES ($1, $2)
		RETURNING id
	`
	var id uuid.UUID
	err = r.db.QueryRowContext(ctx, query, set.Name, rawPrompts).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return uuid.Nil, fmt.Errorf("%w: question set '%s' already exists", domain.ErrConflict, set.Name)
		}
		return uuid.Nil, fmt.Errorf("failed to create question set: %w", err)
	}

	log.Printf("Question set '%s' created successfully", set.Name)
	return id, nil
}

// GetQuestionSet, seti ismine göre döndürür.
func (r *Repository) GetQuestionSet(ctx context.Context, name string) (*domain.QuestionSet, error) {
	query := `SELECT id, set_name, prompts FROM question_sets WHERE set_name = $1`

	var set domain.QuestionSet
	var rawPrompts []byte
	err := r.db.QueryRowContext(ctx, query, name).Scan(&set.ID, &set.Name, &rawPrompts)
	if err != nil {
		return nil, fmt.Errorf("%w: question set '%s'", domain.ErrNotFound, name)
	}
	if err := json.Unmarshal(rawPrompts, &set.Prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompts for set '%s': %w", name, err)
	}
	return &set, nil
}
