package postgres

import (
	"context"
	"fmt"
	"log"
)

// RecordResults, biten oyunun skorlarını kullanıcı istatistiklerine işler.
// Kayıtsız (yerel/misafir) oyuncular tabloda bulunmaz; onların satırı
// güncellenmez ve bu bir hata sayılmaz.
func (r *Repository) RecordResults(ctx context.Context, scores map[string]int, winners []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	winnerSet := make(map[string]bool, len(winners))
	for _, w := range winners {
		winnerSet[w] = true
	}

	query := `
		UPDATE users
		SET games_played = games_played + 1,
		    games_won = games_won + $2,
		    total_score = total_score + $3
		WHERE username = $1
	`
	for username, score := range scores {
		won := 0
		if winnerSet[username] {
			won = 1
		}
		if _, err := tx.ExecContext(ctx, query, username, won, score); err != nil {
			return fmt.Errorf("failed to update stats for '%s': %w", username, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Recorded results for %d players", len(scores))
	return nil
}
