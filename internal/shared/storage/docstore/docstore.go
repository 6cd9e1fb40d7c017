// Package docstore is the document-store gateway shared by every record kind:
// one flat collection per kind with insert, equality find and point lookup.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recruit-api/internal/shared/storage/db"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrUnavailable = errors.New("database not available")
)

// Collection names.
const (
	CollectionJob         = "job"
	CollectionCandidate   = "candidate"
	CollectionApplication = "application"
)

// Backend kinds reported by Database.Kind.
const (
	KindMongo    = "mongodb"
	KindPostgres = "postgres"
	KindMemory   = "memory"
)

// Filter is a set of top-level field equality predicates joined with AND.
type Filter map[string]string

// Collection stores documents of one record kind.
//
// Documents are marshalled with their json tags by the SQL and memory
// backends and with their bson tags by MongoDB, so record types carry both.
// The record's own id field must hold the id passed to InsertOne.
type Collection interface {
	Name() string
	InsertOne(ctx context.Context, id primitive.ObjectID, doc any) error
	// Find decodes all matching documents into out, a pointer to a slice.
	Find(ctx context.Context, filter Filter, out any) error
	// FindByID decodes one document into out or returns ErrNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID, out any) error
}

// Database is a connected store holding the collections.
type Database interface {
	Name() string
	Kind() string
	Collection(name string) Collection
	ListCollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	// EnsureSchema creates tables or indexes; it is safe to call repeatedly.
	EnsureSchema(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects to the store named by rawURL's scheme with server pool
// defaults.
func Open(ctx context.Context, rawURL, dbName string) (Database, error) {
	return open(ctx, rawURL, dbName, db.OptionsFromEnv(db.DefaultServerOptions()))
}

// OpenForMigrate is Open with the single-connection pool used by one-shot
// schema runs.
func OpenForMigrate(ctx context.Context, rawURL, dbName string) (Database, error) {
	return open(ctx, rawURL, dbName, db.OptionsFromEnv(db.DefaultMigrateOptions()))
}

func open(ctx context.Context, rawURL, dbName string, sqlOpts db.Options) (Database, error) {
	lower := strings.ToLower(strings.TrimSpace(rawURL))
	switch {
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		m, err := OpenMongo(ctx, rawURL, dbName)
		if err != nil {
			return nil, err
		}
		return m, nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		p, err := OpenPostgres(ctx, rawURL, sqlOpts)
		if err != nil {
			return nil, err
		}
		return p, nil
	case lower == "":
		return nil, fmt.Errorf("database url is empty")
	default:
		return nil, fmt.Errorf("unsupported database url scheme")
	}
}
