package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoSelectionTimeout = 5 * time.Second

// Mongo stores each collection as a MongoDB collection keyed by ObjectID.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo creates a client for uri. The driver connects lazily, so an
// unreachable server surfaces on the first operation rather than here.
func OpenMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	if dbName == "" {
		dbName = "recruit"
	}
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(mongoSelectionTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	return NewMongo(client.Database(dbName)), nil
}

// NewMongo wraps an existing database handle.
func NewMongo(database *mongo.Database) *Mongo {
	return &Mongo{client: database.Client(), db: database}
}

func (m *Mongo) Name() string { return m.db.Name() }

func (m *Mongo) Kind() string { return KindMongo }

func (m *Mongo) Collection(name string) Collection {
	return &mongoCollection{coll: m.db.Collection(name)}
}

func (m *Mongo) ListCollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.D{})
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// EnsureSchema indexes the fields used by the application list filters.
func (m *Mongo) EnsureSchema(ctx context.Context) error {
	_, err := m.db.Collection(CollectionApplication).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "status", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create application index: %w", err)
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) Name() string { return c.coll.Name() }

func (c *mongoCollection) InsertOne(ctx context.Context, id primitive.ObjectID, doc any) error {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if got, ok := res.InsertedID.(primitive.ObjectID); ok && got != id {
		return fmt.Errorf("%s insert returned id %s, want %s", c.Name(), got.Hex(), id.Hex())
	}
	return nil
}

func (c *mongoCollection) Find(ctx context.Context, filter Filter, out any) error {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}
	cur, err := c.coll.Find(ctx, query)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (c *mongoCollection) FindByID(ctx context.Context, id primitive.ObjectID, out any) error {
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

var _ Database = (*Mongo)(nil)
