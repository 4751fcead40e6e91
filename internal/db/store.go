package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"arogya/internal/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// Store persists conversation turns so the followup fallback has history
// across requests. Durability beyond that is out of scope.
type Store struct {
	pool *pgxpool.Pool
}

type SessionInfo struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT 'en',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS messages (
			id BIGSERIAL PRIMARY KEY,
			session_id TEXT NOT NULL REFERENCES sessions(session_id) ON DELETE CASCADE,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			language TEXT NOT NULL DEFAULT 'en',
			intent TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session_created ON messages(session_id, created_at);`,
	}

	for _, q := range queries {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// SaveMessage upserts the session row and appends a turn.
func (s *Store) SaveMessage(ctx context.Context, sessionID, userID, role, content, language, intent string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO sessions(session_id, user_id, language)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id)
		DO UPDATE SET language = EXCLUDED.language;
	`, sessionID, userID, language)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO messages(session_id, role, content, language, intent)
		VALUES ($1, $2, $3, $4, $5)
	`, sessionID, role, content, language, intent)
	return err
}

// RecentMessages returns the last N user/assistant turns in chronological
// order.
func (s *Store) RecentMessages(ctx context.Context, sessionID string, limit int) ([]domain.Turn, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT role, content
		FROM (
			SELECT role, content, created_at
			FROM messages
			WHERE session_id=$1 AND role IN ('user', 'assistant')
			ORDER BY created_at DESC
			LIMIT $2
		) t
		ORDER BY created_at ASC
	`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	turns := make([]domain.Turn, 0, limit)
	for rows.Next() {
		var t domain.Turn
		if err := rows.Scan(&t.Role, &t.Content); err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

func (s *Store) GetSession(ctx context.Context, sessionID string) (SessionInfo, error) {
	var info SessionInfo
	err := s.pool.QueryRow(ctx, `
		SELECT session_id, user_id, language, created_at
		FROM sessions
		WHERE session_id=$1
	`, sessionID).Scan(&info.SessionID, &info.UserID, &info.Language, &info.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return SessionInfo{}, ErrSessionNotFound
	}
	if err != nil {
		return SessionInfo{}, err
	}
	return info, nil
}
