package applications

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recruit-api/internal/shared/storage/docstore"
)

var ErrNotFound = errors.New("application not found")

// Repo defines persistence operations for applications.
type Repo interface {
	Create(ctx context.Context, app Application) error
	List(ctx context.Context, filter ListFilter) ([]Application, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Application, error)
}

// StoreRepo implements Repo on a document store collection.
type StoreRepo struct {
	Coll docstore.Collection
}

func (r *StoreRepo) Create(ctx context.Context, app Application) error {
	return r.Coll.InsertOne(ctx, app.ID, app)
}

func (r *StoreRepo) List(ctx context.Context, filter ListFilter) ([]Application, error) {
	query := docstore.Filter{}
	if filter.JobID != "" {
		query["job_id"] = filter.JobID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	var out []Application
	if err := r.Coll.Find(ctx, query, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Application{}
	}
	return out, nil
}

func (r *StoreRepo) GetByID(ctx context.Context, id primitive.ObjectID) (Application, error) {
	var app Application
	if err := r.Coll.FindByID(ctx, id, &app); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return app, nil
}

var _ Repo = (*StoreRepo)(nil)
