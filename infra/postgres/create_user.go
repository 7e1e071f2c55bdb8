package postgres

import (
	"context"
	"fmt"
	"log"
	"strings"

	"word-game-service/domain"
)

// CreateUser, auth servisinden kafka ile gelen kullanıcıyı yerel tabloya
// yazar. Mesajlar en az bir kez teslim edildiği için tekrar eden kayıt
// sessizce atlanır.
func (r *Repository) CreateUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (id, username, email)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Email)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			log.Printf("User '%s' already exists, skipping", user.Username)
			return nil
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User '%s' created successfully", user.Username)
	return nil
}
