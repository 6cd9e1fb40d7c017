package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Database. Find returns documents in insertion order.
type Memory struct {
	mu    sync.RWMutex
	name  string
	colls map[string]*memoryCollection
}

type memoryCollection struct {
	db    *Memory
	name  string
	order []primitive.ObjectID
	docs  map[primitive.ObjectID][]byte
}

// NewMemory constructs an empty Memory database.
func NewMemory() *Memory {
	return &Memory{
		name:  "memory",
		colls: make(map[string]*memoryCollection),
	}
}

func (m *Memory) Name() string { return m.name }

func (m *Memory) Kind() string { return KindMemory }

// Collection returns the named collection, creating it lazily.
func (m *Memory) Collection(name string) Collection {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.colls[name]
	if !ok {
		c = &memoryCollection{db: m, name: name, docs: make(map[primitive.ObjectID][]byte)}
		m.colls[name] = c
	}
	return c
}

// ListCollectionNames returns collections holding at least one document.
func (m *Memory) ListCollectionNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.colls))
	for name, c := range m.colls {
		if len(c.order) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Ping(ctx context.Context) error { return ctx.Err() }

func (m *Memory) EnsureSchema(ctx context.Context) error { return ctx.Err() }

func (m *Memory) Close(ctx context.Context) error { return nil }

func (c *memoryCollection) Name() string { return c.name }

func (c *memoryCollection) InsertOne(ctx context.Context, id primitive.ObjectID, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", c.name, err)
	}
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	if _, exists := c.docs[id]; exists {
		return fmt.Errorf("duplicate %s id %s", c.name, id.Hex())
	}
	c.docs[id] = raw
	c.order = append(c.order, id)
	return nil
}

func (c *memoryCollection) Find(ctx context.Context, filter Filter, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.db.mu.RLock()
	matched := make([][]byte, 0, len(c.order))
	for _, id := range c.order {
		raw := c.docs[id]
		ok, err := matches(raw, filter)
		if err != nil {
			c.db.mu.RUnlock()
			return err
		}
		if ok {
			matched = append(matched, raw)
		}
	}
	c.db.mu.RUnlock()

	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.Write(bytes.Join(matched, []byte{','}))
	buf.WriteByte(']')
	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return fmt.Errorf("decode %s documents: %w", c.name, err)
	}
	return nil
}

func (c *memoryCollection) FindByID(ctx context.Context, id primitive.ObjectID, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.db.mu.RLock()
	raw, ok := c.docs[id]
	c.db.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s document: %w", c.name, err)
	}
	return nil
}

func matches(raw []byte, filter Filter) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false, err
	}
	for key, want := range filter {
		got, ok := fields[key].(string)
		if !ok || got != want {
			return false, nil
		}
	}
	return true, nil
}

var _ Database = (*Memory)(nil)
