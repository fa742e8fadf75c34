// Package publish copies registry content into a Postgres table so a
// documentation site backed by a database can serve it.
package publish

import (
	"context"
	"fmt"

	"github.com/barisgit/snippets/internal/logging"
	"github.com/barisgit/snippets/snippets"
	"github.com/jackc/pgx/v5"
)

// Beginner is satisfied by *pgx.Conn and *pgxpool.Pool
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Row is one stored text block
type Row struct {
	Component string
	Key       string
	Language  string
	Content   string
}

// Rows flattens reg into one row per component and key, in registration
// and key order.
func Rows(reg *snippets.Registry) []Row {
	var rows []Row
	for _, c := range reg.All() {
		for _, k := range snippets.Keys() {
			text, _ := c.Entry.Get(k)
			rows = append(rows, Row{
				Component: c.ID,
				Key:       k.String(),
				Language:  k.Language(),
				Content:   text,
			})
		}
	}
	return rows
}

// Publisher upserts registry content into a table
type Publisher struct {
	db    Beginner
	table string
}

// NewPublisher creates a publisher writing to table
func NewPublisher(db Beginner, table string) *Publisher {
	return &Publisher{db: db, table: table}
}

// CreateTableSQL returns the DDL for the target table
func (p *Publisher) CreateTableSQL() string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	component TEXT NOT NULL,
	key TEXT NOT NULL,
	language TEXT NOT NULL,
	content TEXT NOT NULL,
	PRIMARY KEY (component, key)
)`, pgx.Identifier{p.table}.Sanitize())
}

// UpsertSQL returns the statement used for every row
func (p *Publisher) UpsertSQL() string {
	return fmt.Sprintf(`INSERT INTO %s (component, key, language, content)
VALUES ($1, $2, $3, $4)
ON CONFLICT (component, key) DO UPDATE
SET language = EXCLUDED.language, content = EXCLUDED.content`, pgx.Identifier{p.table}.Sanitize())
}

// Publish writes every row of reg in a single transaction and returns the
// number of rows written. Running it twice leaves the table unchanged.
func (p *Publisher) Publish(ctx context.Context, reg *snippets.Registry) (int, error) {
	logger := logging.GetLogger("publish")
	done := logging.LogOperationStart(logger, "publish")
	defer done()

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, p.CreateTableSQL()); err != nil {
		return 0, fmt.Errorf("failed to create table %s: %w", p.table, err)
	}

	upsert := p.UpsertSQL()
	rows := Rows(reg)
	for _, row := range rows {
		if _, err := tx.Exec(ctx, upsert, row.Component, row.Key, row.Language, row.Content); err != nil {
			return 0, fmt.Errorf("failed to upsert %s/%s: %w", row.Component, row.Key, err)
		}
		logger.Trace().Str("component", row.Component).Str("key", row.Key).Msg("Upserted snippet")
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	logger.Info().Int("rows", len(rows)).Str("table", p.table).Msg("Published snippets")
	return len(rows), nil
}

// Connect opens a single connection to databaseURL
func Connect(ctx context.Context, databaseURL string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return conn, nil
}
