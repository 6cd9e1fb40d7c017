package docstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recruit-api/internal/shared/metrics"
	"recruit-api/internal/shared/telemetry"
)

// Instrument wraps db so every collection operation is timed and failures
// other than ErrNotFound are counted and logged.
func Instrument(db Database) Database {
	if db == nil {
		return nil
	}
	return instrumentedDB{Database: db}
}

type instrumentedDB struct {
	Database
}

func (d instrumentedDB) Collection(name string) Collection {
	return instrumentedCollection{inner: d.Database.Collection(name)}
}

type instrumentedCollection struct {
	inner Collection
}

func (c instrumentedCollection) Name() string { return c.inner.Name() }

func (c instrumentedCollection) InsertOne(ctx context.Context, id primitive.ObjectID, doc any) error {
	start := time.Now()
	err := c.inner.InsertOne(ctx, id, doc)
	c.observe("insert_one", start, err)
	return err
}

func (c instrumentedCollection) Find(ctx context.Context, filter Filter, out any) error {
	start := time.Now()
	err := c.inner.Find(ctx, filter, out)
	c.observe("find", start, err)
	return err
}

func (c instrumentedCollection) FindByID(ctx context.Context, id primitive.ObjectID, out any) error {
	start := time.Now()
	err := c.inner.FindByID(ctx, id, out)
	c.observe("find_by_id", start, err)
	return err
}

func (c instrumentedCollection) observe(op string, start time.Time, err error) {
	metrics.ObserveStoreDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err == nil || errors.Is(err, ErrNotFound) {
		return
	}
	metrics.IncStoreErrors()
	telemetry.Error("store.error", map[string]any{
		"collection": c.inner.Name(),
		"op":         op,
		"error":      err,
	})
}
