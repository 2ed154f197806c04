package extract

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // registers "sqlite"

	"quizgen/internal/config"
	"quizgen/internal/question"
	"quizgen/internal/spec"
)

const sqliteDriver = "sqlite"

// schemaSQLite creates a question bank table; %s is the table name.
const schemaSQLite = `
CREATE TABLE IF NOT EXISTS %s (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  q TEXT NOT NULL,
  opts TEXT NOT NULL,    -- JSON array of option strings
  correct INTEGER NOT NULL
);
`

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return db, nil
}

func readSQLite(ctx context.Context, path string, source spec.SourceConfig) ([]question.Question, int, error) {
	table := source.Table
	if table == "" {
		table = config.DefaultSQLiteTable
	}
	if !config.IsIdentifier(table) {
		return nil, 0, fmt.Errorf("invalid table name %q", table)
	}
	db, err := openSQLite(ctx, path)
	if err != nil {
		return nil, 0, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT q, opts, correct FROM %s ORDER BY id`, table))
	if err != nil {
		return nil, 0, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var (
		questions []question.Question
		dropped   int
	)
	for rows.Next() {
		var (
			q       question.Question
			options string
		)
		if err := rows.Scan(&q.Text, &options, &q.Correct); err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", table, err)
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			dropped++
			continue
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", table, err)
	}
	return questions, dropped, nil
}

// WriteSQLite stores every pool source in its own table named after the
// source key, replacing existing rows.
func WriteSQLite(ctx context.Context, path string, pool question.Pool) error {
	db, err := openSQLite(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, source := range pool.Sources {
		if !config.IsIdentifier(source.Key) {
			return fmt.Errorf("source key %q is not a valid table name", source.Key)
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(schemaSQLite, source.Key)); err != nil {
			return fmt.Errorf("create %s: %w", source.Key, err)
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, source.Key)); err != nil {
			return fmt.Errorf("clear %s: %w", source.Key, err)
		}
		insert := fmt.Sprintf(`INSERT INTO %s (q, opts, correct) VALUES (?, ?, ?)`, source.Key)
		for _, q := range source.Questions {
			options, err := json.Marshal(q.Options)
			if err != nil {
				return fmt.Errorf("encode options: %w", err)
			}
			if _, err := tx.ExecContext(ctx, insert, q.Text, string(options), q.Correct); err != nil {
				return fmt.Errorf("insert into %s: %w", source.Key, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
