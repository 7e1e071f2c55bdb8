package postgres

import (
	"context"
	"fmt"
	"log"

	"word-game-service/domain"

	"github.com/google/uuid"
)

// CreateRoom, oda kaydını kalıcı katmana yazar. Oyunun kendisi bellekte
// yaşar; bu kayıt lobi geçmişi ve raporlama içindir.
func (r *Repository) CreateRoom(ctx context.Context, room domain.Room) (uuid.UUID, error) {
	query := `
		INSERT INTO rooms (room_name, creator, kind, mode, status, time_limit)
		VALUES ($1, $2, $3, $4, 'open', $5)
		RETURNING id
	`
	var roomID uuid.UUID
	err := r.db.QueryRowContext(ctx, query,
		room.RoomName, room.Creator, room.Kind, room.Mode, room.TimeLimit,
	).Scan(&roomID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create room record: %w", err)
	}

	log.Printf("Room '%s' recorded with ID %s", room.RoomName, roomID)
	return roomID, nil
}

// UpdateRoomStatus, aynı isimli en güncel oda kaydının durumunu günceller.
// Kapanmış oda adları yeniden kullanılabildiği için isim tek başına anahtar
// değildir; her zaman son kayıt hedeflenir.
func (r *Repository) UpdateRoomStatus(ctx context.Context, roomName, status string) error {
	query := `
		UPDATE rooms
		SET status = $2,
		    started_at = CASE WHEN $2 = 'playing' THEN CURRENT_TIMESTAMP ELSE started_at END,
		    finished_at = CASE WHEN $2 = 'closed' THEN CURRENT_TIMESTAMP ELSE finished_at END
		WHERE id = (SELECT id FROM rooms WHERE room_name = $1 ORDER BY created_at DESC LIMIT 1)
	`
	result, err := r.db.ExecContext(ctx, query, roomName, status)
	if err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: room '%s' has no record", domain.ErrNotFound, roomName)
	}
	return nil
}
