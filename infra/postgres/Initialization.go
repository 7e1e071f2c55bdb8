package postgres

import (
	"database/sql"
	"fmt"
	"log"
)

const (
	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(100) NOT NULL UNIQUE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			games_played INT DEFAULT 0,
			games_won INT DEFAULT 0,
			total_score INT DEFAULT 0
		);`

	createRoomsTable = `
		CREATE TABLE IF NOT EXISTS rooms (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			room_name VARCHAR(100) NOT NULL,
			creator VARCHAR(50) NOT NULL,
			kind VARCHAR(20) NOT NULL, -- 'letter_match', 'word_blitz', 'word_chain'
			mode VARCHAR(20) NOT NULL, -- 'local_turn', 'single_timed', 'online_turn'
			status VARCHAR(20) NOT NULL DEFAULT 'open', -- 'open', 'playing', 'closed'
			time_limit INT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			started_at TIMESTAMP WITH TIME ZONE,
			finished_at TIMESTAMP WITH TIME ZONE
		);`

	createAnswersTable = `
		CREATE TABLE IF NOT EXISTS answers (
			id UUID PRIMARY KEY,
			room_name VARCHAR(100) NOT NULL,
			question_id UUID NOT NULL,
			question_prompt TEXT NOT NULL,
			letter VARCHAR(5) NOT NULL DEFAULT '',
			username VARCHAR(50) NOT NULL,
			word TEXT NOT NULL,
			auto_checked BOOLEAN DEFAULT FALSE,
			auto_correct BOOLEAN DEFAULT FALSE,
			auto_explanation TEXT DEFAULT '',
			vote_requested BOOLEAN DEFAULT FALSE,
			vote_yes INT DEFAULT 0,
			vote_no INT DEFAULT 0,
			admin_override BOOLEAN DEFAULT FALSE,
			override_value BOOLEAN DEFAULT FALSE,
			submitted_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createQuestionSetsTable = `
		CREATE TABLE IF NOT EXISTS question_sets (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			set_name VARCHAR(100) NOT NULL UNIQUE,
			prompts JSONB NOT NULL
		);`

	// Varsayılan soru seti; oda kurulurken set seçilmezse bu kullanılır.
	insertDefaultQuestionSet = `
		INSERT INTO question_sets (set_name, prompts) VALUES
		('classic', '["Name", "Place", "Animal", "Food", "Thing"]')
		ON CONFLICT (set_name) DO NOTHING;`

	// Performans için indeksler
	createIndexes = `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username);
		CREATE INDEX IF NOT EXISTS idx_rooms_status ON rooms(status);
		CREATE INDEX IF NOT EXISTS idx_rooms_room_name ON rooms(room_name);
		CREATE INDEX IF NOT EXISTS idx_answers_room_name ON answers(room_name);
		CREATE INDEX IF NOT EXISTS idx_answers_username ON answers(username);`
)

// initDB, tüm veritabanı tablolarını oluşturur.
func initDB(db *sql.DB) error {
	tables := []struct {
		name  string
		query string
	}{
		{"users", createUsersTable},
		{"rooms", createRoomsTable},
		{"answers", createAnswersTable},
		{"question_sets", createQuestionSetsTable},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create '%s' table: %w", table.name, err)
		}
		log.Printf("Table '%s' created successfully", table.name)
	}

	if _, err := db.Exec(insertDefaultQuestionSet); err != nil {
		return fmt.Errorf("failed to insert default question set: %w", err)
	}

	if _, err := db.Exec(createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database initialized successfully with all tables and indexes")
	return nil
}
