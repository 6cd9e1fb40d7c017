package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"recruit-api/internal/shared/storage/db"
)

// Postgres keeps each collection in a table of (id, doc JSONB, created_at).
type Postgres struct {
	DB   *sql.DB
	name string
}

var connectSQL = db.Connect

// OpenPostgres connects with the given pool options.
func OpenPostgres(ctx context.Context, databaseURL string, opts db.Options) (*Postgres, error) {
	sqlDB, err := connectSQL(ctx, databaseURL, opts)
	if err != nil {
		return nil, err
	}
	return NewPostgres(ctx, sqlDB), nil
}

// NewPostgres wraps an open *sql.DB.
func NewPostgres(ctx context.Context, sqlDB *sql.DB) *Postgres {
	p := &Postgres{DB: sqlDB, name: KindPostgres}
	var current string
	if err := sqlDB.QueryRowContext(ctx, `SELECT current_database()`).Scan(&current); err == nil && current != "" {
		p.name = current
	}
	return p
}

func (p *Postgres) Name() string { return p.name }

func (p *Postgres) Kind() string { return KindPostgres }

func (p *Postgres) Collection(name string) Collection {
	return &pgCollection{db: p.DB, name: name, table: pgx.Identifier{name}.Sanitize()}
}

func (p *Postgres) ListCollectionNames(ctx context.Context) ([]string, error) {
	const query = `
SELECT table_name
FROM information_schema.tables
WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
ORDER BY table_name`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.DB.PingContext(ctx)
}

func (p *Postgres) EnsureSchema(ctx context.Context) error {
	return db.RunMigrations(ctx, p.DB)
}

func (p *Postgres) Close(ctx context.Context) error {
	return p.DB.Close()
}

type pgCollection struct {
	db    *sql.DB
	name  string
	table string
}

func (c *pgCollection) Name() string { return c.name }

func (c *pgCollection) InsertOne(ctx context.Context, id primitive.ObjectID, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", c.name, err)
	}
	query := `INSERT INTO ` + c.table + ` (id, doc, created_at) VALUES ($1, $2::jsonb, now())`
	_, err = c.db.ExecContext(ctx, query, id.Hex(), string(raw))
	return err
}

func (c *pgCollection) Find(ctx context.Context, filter Filter, out any) error {
	predicate, err := json.Marshal(filter)
	if err != nil {
		return err
	}
	if len(filter) == 0 {
		predicate = []byte("{}")
	}
	query := `SELECT doc FROM ` + c.table + ` WHERE doc @> $1::jsonb ORDER BY created_at, id`
	rows, err := c.db.QueryContext(ctx, query, string(predicate))
	if err != nil {
		return err
	}
	defer rows.Close()

	docs := make([]string, 0)
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte("["+strings.Join(docs, ",")+"]"), out); err != nil {
		return fmt.Errorf("decode %s documents: %w", c.name, err)
	}
	return nil
}

func (c *pgCollection) FindByID(ctx context.Context, id primitive.ObjectID, out any) error {
	query := `SELECT doc FROM ` + c.table + ` WHERE id = $1`
	var doc string
	if err := c.db.QueryRowContext(ctx, query, id.Hex()).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return fmt.Errorf("decode %s document: %w", c.name, err)
	}
	return nil
}

var _ Database = (*Postgres)(nil)
