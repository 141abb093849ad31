// Package session keeps per-visitor dashboard state: chat log, row summaries, language and translations.
package session

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/ytgebes/biospace/pkg/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

// DefaultDSN is a shared in-memory database, nothing survives a restart
const DefaultDSN = "file:biospace?mode=memory&cache=shared"

// Config represents session database configuration
type Config struct {
	DSN          string
	MaxOpenConns int
}

// Session is a snapshot of one visitor's state
type Session struct {
	ID        string
	Language  string
	LastQuery string
	CreatedAt time.Time
	UpdatedAt time.Time
	Messages  []domain.ChatMessage
	Summaries map[string]domain.RowSummary
}

// Store keeps sessions in SQLite
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

type sessionRow struct {
	ID        string `db:"id"`
	Language  string `db:"current_lang"`
	LastQuery string `db:"last_query"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

type messageRow struct {
	Seq       int64  `db:"seq"`
	Role      string `db:"role"`
	Content   string `db:"content"`
	CreatedAt int64  `db:"created_at"`
}

type summaryRow struct {
	Key       string `db:"key"`
	State     string `db:"state"`
	Kind      string `db:"kind"`
	Markdown  string `db:"markdown"`
	Err       string `db:"err"`
	UpdatedAt int64  `db:"updated_at"`
}

// New opens the session database and creates the schema
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		cfg.DSN = DefaultDSN
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// in-memory database lives as long as at least one connection is open
	maxConns := cfg.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 1
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the session, creating it with defaults on first access
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	if err := s.touch(ctx, id); err != nil {
		return nil, err
	}

	var row sessionRow
	if err := s.db.GetContext(ctx, &row,
		"SELECT id, current_lang, last_query, created_at, updated_at FROM sessions WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	messages, err := s.Messages(ctx, id)
	if err != nil {
		return nil, err
	}
	summaries, err := s.Summaries(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:        row.ID,
		Language:  row.Language,
		LastQuery: row.LastQuery,
		CreatedAt: time.UnixMilli(row.CreatedAt),
		UpdatedAt: time.UnixMilli(row.UpdatedAt),
		Messages:  messages,
		Summaries: summaries,
	}, nil
}

// AppendMessage adds a message to the end of the chat log
func (s *Store) AppendMessage(ctx context.Context, id string, msg domain.ChatMessage) error {
	if err := s.touch(ctx, id); err != nil {
		return err
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.now()
	}

	query := `
		INSERT INTO messages (session_id, seq, role, content, created_at)
		SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ? FROM messages WHERE session_id = ?
	`
	return s.retry(ctx, "append message", func() error {
		_, err := s.db.ExecContext(ctx, query, id, string(msg.Role), msg.Content, msg.CreatedAt.UnixMilli(), id)
		return err
	})
}

// Messages returns the chat log in insertion order
func (s *Store) Messages(ctx context.Context, id string) ([]domain.ChatMessage, error) {
	var rows []messageRow
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT seq, role, content, created_at FROM messages WHERE session_id = ? ORDER BY seq", id); err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}

	res := make([]domain.ChatMessage, 0, len(rows))
	for _, r := range rows {
		res = append(res, domain.ChatMessage{Role: domain.Role(r.Role), Content: r.Content, CreatedAt: time.UnixMilli(r.CreatedAt)})
	}
	return res, nil
}

// SetSummary stores the summary and row state under rs.Key while query is still the last query
// of the session. A write for an older query is dropped and reported with false.
func (s *Store) SetSummary(ctx context.Context, id, query string, rs domain.RowSummary) (bool, error) {
	if rs.Key == "" {
		return false, errors.New("set summary: empty key")
	}
	if err := s.touch(ctx, id); err != nil {
		return false, err
	}
	if rs.UpdatedAt.IsZero() {
		rs.UpdatedAt = s.now()
	}

	stmt := `
		INSERT INTO summaries (session_id, key, state, kind, markdown, err, updated_at)
		SELECT ?, ?, ?, ?, ?, ?, ? FROM sessions WHERE id = ? AND last_query = ?
		ON CONFLICT(session_id, key) DO UPDATE SET
			state = excluded.state,
			kind = excluded.kind,
			markdown = excluded.markdown,
			err = excluded.err,
			updated_at = excluded.updated_at
	`
	var stored bool
	err := s.retry(ctx, "set summary", func() error {
		res, err := s.db.ExecContext(ctx, stmt, id, rs.Key, string(rs.State), string(rs.Result.Kind),
			rs.Result.Markdown, rs.Result.Err, rs.UpdatedAt.UnixMilli(), id, query)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		stored = n > 0
		return nil
	})
	return stored, err
}

// Summary returns a single row summary
func (s *Store) Summary(ctx context.Context, id, key string) (domain.RowSummary, bool, error) {
	var row summaryRow
	err := s.db.GetContext(ctx, &row,
		"SELECT key, state, kind, markdown, err, updated_at FROM summaries WHERE session_id = ? AND key = ?", id, key)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RowSummary{}, false, nil
	}
	if err != nil {
		return domain.RowSummary{}, false, fmt.Errorf("get summary: %w", err)
	}
	return row.toDomain(), true, nil
}

// Summaries returns all row summaries of the session keyed by summary key
func (s *Store) Summaries(ctx context.Context, id string) (map[string]domain.RowSummary, error) {
	var rows []summaryRow
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT key, state, kind, markdown, err, updated_at FROM summaries WHERE session_id = ?", id); err != nil {
		return nil, fmt.Errorf("get summaries: %w", err)
	}
	res := make(map[string]domain.RowSummary, len(rows))
	for _, r := range rows {
		res[r.Key] = r.toDomain()
	}
	return res, nil
}

func (r summaryRow) toDomain() domain.RowSummary {
	return domain.RowSummary{
		Key:       r.Key,
		State:     domain.RowState(r.State),
		Result:    domain.SummaryResult{Kind: domain.ErrorKind(r.Kind), Markdown: r.Markdown, Err: r.Err},
		UpdatedAt: time.UnixMilli(r.UpdatedAt),
	}
}

// ResetQuery records query as the last query. When it differs from the previous one
// all summaries are dropped, the returned flag reports that.
func (s *Store) ResetQuery(ctx context.Context, id, query string) (bool, error) {
	if err := s.touch(ctx, id); err != nil {
		return false, err
	}

	var changed bool
	err := s.retry(ctx, "reset query", func() error {
		changed = false
		tx, err := s.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		var last string
		if err := tx.GetContext(ctx, &last, "SELECT last_query FROM sessions WHERE id = ?", id); err != nil {
			return err
		}
		if last == query {
			return tx.Commit()
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM summaries WHERE session_id = ?", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "UPDATE sessions SET last_query = ? WHERE id = ?", query, id); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		changed = true
		return nil
	})
	return changed, err
}

// SetLanguage sets the current UI language
func (s *Store) SetLanguage(ctx context.Context, id, lang string) error {
	if err := s.touch(ctx, id); err != nil {
		return err
	}
	return s.retry(ctx, "set language", func() error {
		_, err := s.db.ExecContext(ctx, "UPDATE sessions SET current_lang = ? WHERE id = ?", lang, id)
		return err
	})
}

// Translation returns UI strings stored for lang. English is always present.
func (s *Store) Translation(ctx context.Context, id, lang string) (map[string]string, bool, error) {
	if lang == domain.DefaultLanguage {
		return domain.DefaultUIStrings(), true, nil
	}

	var data string
	err := s.db.GetContext(ctx, &data, "SELECT strings FROM translations WHERE session_id = ? AND language = ?", id, lang)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get translation: %w", err)
	}

	res := map[string]string{}
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		return nil, false, fmt.Errorf("decode translation: %w", err)
	}
	return res, true, nil
}

// PutTranslation stores UI strings for lang. The first stored translation wins.
func (s *Store) PutTranslation(ctx context.Context, id, lang string, strs map[string]string) error {
	if lang == domain.DefaultLanguage {
		return nil
	}
	if err := s.touch(ctx, id); err != nil {
		return err
	}
	data, err := json.Marshal(strs)
	if err != nil {
		return fmt.Errorf("encode translation: %w", err)
	}
	return s.retry(ctx, "put translation", func() error {
		_, err := s.db.ExecContext(ctx,
			"INSERT OR IGNORE INTO translations (session_id, language, strings) VALUES (?, ?, ?)", id, lang, string(data))
		return err
	})
}

// DeleteIdle removes sessions not touched for longer than ttl with all their data
func (s *Store) DeleteIdle(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := s.now().Add(-ttl).UnixMilli()
	var deleted int64
	err := s.retry(ctx, "delete idle sessions", func() error {
		tx, err := s.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		for _, table := range []string{"messages", "summaries", "translations"} {
			query := fmt.Sprintf("DELETE FROM %s WHERE session_id IN (SELECT id FROM sessions WHERE updated_at < ?)", table) //nolint:gosec // fixed table names
			if _, err := tx.ExecContext(ctx, query, cutoff); err != nil {
				return err
			}
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE updated_at < ?", cutoff)
		if err != nil {
			return err
		}
		if deleted, err = res.RowsAffected(); err != nil {
			return err
		}
		return tx.Commit()
	})
	return deleted, err
}

// touch creates the session if missing and marks it as recently used
func (s *Store) touch(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("empty session id")
	}
	now := s.now().UnixMilli()
	query := `
		INSERT INTO sessions (id, current_lang, last_query, created_at, updated_at)
		VALUES (?, ?, '', ?, ?)
		ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at
	`
	return s.retry(ctx, "touch session", func() error {
		_, err := s.db.ExecContext(ctx, query, id, domain.DefaultLanguage, now, now)
		return err
	})
}
