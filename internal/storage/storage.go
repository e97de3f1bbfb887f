package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the transcript database. Supported drivers are sqlite3
// (the default, file-backed) and mysql. MySQL DSNs must carry
// parseTime=true so DATETIME columns scan into time.Time.
func Open(driver, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database dsn must be provided")
	}

	var (
		db  *sql.DB
		err error
	)

	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		db, err = sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	case "mysql":
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate ensures the required tables exist and seeds the single settings
// row. Seeding here keeps the HTTP API free of a settings-creation path.
func Migrate(db *sql.DB, driver string) error {
	var stmts []string
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS conversations (
				id TEXT PRIMARY KEY,
				session_id TEXT NOT NULL,
				role TEXT NOT NULL CHECK (role IN ('user','assistant')),
				message TEXT NOT NULL,
				created_at DATETIME NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_conversations_session ON conversations(session_id)`,
			`CREATE INDEX IF NOT EXISTS idx_conversations_created_at ON conversations(created_at DESC)`,
			`CREATE TABLE IF NOT EXISTS chatbot_settings (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				bot_name TEXT NOT NULL,
				welcome_message TEXT NOT NULL,
				system_prompt TEXT NOT NULL,
				primary_color TEXT NOT NULL
			)`,
			`INSERT OR IGNORE INTO chatbot_settings (id, bot_name, welcome_message, system_prompt, primary_color)
				VALUES (1, 'Support Bot', 'Hallo! Wie kann ich Ihnen helfen?', 'Du bist ein freundlicher Kundensupport-Assistent.', '#2563eb')`,
		}
	case "mysql":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS conversations (
				id CHAR(36) PRIMARY KEY,
				session_id VARCHAR(64) NOT NULL,
				role VARCHAR(16) NOT NULL,
				message TEXT NOT NULL,
				created_at DATETIME(6) NOT NULL,
				INDEX idx_conversations_session (session_id),
				INDEX idx_conversations_created_at (created_at DESC)
			)`,
			`CREATE TABLE IF NOT EXISTS chatbot_settings (
				id BIGINT PRIMARY KEY,
				bot_name VARCHAR(255) NOT NULL,
				welcome_message TEXT NOT NULL,
				system_prompt TEXT NOT NULL,
				primary_color VARCHAR(16) NOT NULL
			)`,
			`INSERT IGNORE INTO chatbot_settings (id, bot_name, welcome_message, system_prompt, primary_color)
				VALUES (1, 'Support Bot', 'Hallo! Wie kann ich Ihnen helfen?', 'Du bist ein freundlicher Kundensupport-Assistent.', '#2563eb')`,
		}
	default:
		return fmt.Errorf("unsupported driver: %s", driver)
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
