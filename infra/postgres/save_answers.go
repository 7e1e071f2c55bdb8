package postgres

import (
	"context"
	"fmt"
	"log"

	"word-game-service/domain"
)

// SaveAnswerRecords, bir oyunun bütün cevaplarını tek işlemde yazar. Aynı
// oyun için tekrar çağrıldığında (hakemlik alanları değiştikçe) kayıtlar
// güncellenir; cevap kimlikleri bellek tarafında üretildiği için upsert
// güvenlidir.
func (r *Repository) SaveAnswerRecords(ctx context.Context, records []domain.AnswerRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO answers (
			id, room_name, question_id, question_prompt, letter, username, word,
			auto_checked, auto_correct, auto_explanation,
			vote_requested, vote_yes, vote_no,
			admin_override, override_value, submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			auto_checked = EXCLUDED.auto_checked,
			auto_correct = EXCLUDED.auto_correct,
			auto_explanation = EXCLUDED.auto_explanation,
			vote_requested = EXCLUDED.vote_requested,
			vote_yes = EXCLUDED.vote_yes,
			vote_no = EXCLUDED.vote_no,
			admin_override = EXCLUDED.admin_override,
			override_value = EXCLUDED.override_value
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare answer upsert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			rec.ID, rec.RoomName, rec.QuestionID, rec.QuestionPrompt, rec.Letter,
			rec.Username, rec.Word,
			rec.AutoChecked, rec.AutoCorrect, rec.AutoExplanation,
			rec.VoteRequested, rec.VoteYes, rec.VoteNo,
			rec.AdminOverride, rec.OverrideValue, rec.SubmittedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save answer %s: %w", rec.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Saved %d answer records for room '%s'", len(records), records[0].RoomName)
	return nil
}
