package jobs

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recruit-api/internal/shared/storage/docstore"
)

var ErrNotFound = errors.New("job not found")

// Repo defines persistence operations for jobs.
type Repo interface {
	Create(ctx context.Context, job Job) error
	List(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Job, error)
}

// StoreRepo implements Repo on a document store collection.
type StoreRepo struct {
	Coll docstore.Collection
}

func (r *StoreRepo) Create(ctx context.Context, job Job) error {
	return r.Coll.InsertOne(ctx, job.ID, job)
}

func (r *StoreRepo) List(ctx context.Context) ([]Job, error) {
	var out []Job
	if err := r.Coll.Find(ctx, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Job{}
	}
	return out, nil
}

func (r *StoreRepo) GetByID(ctx context.Context, id primitive.ObjectID) (Job, error) {
	var job Job
	if err := r.Coll.FindByID(ctx, id, &job); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

var _ Repo = (*StoreRepo)(nil)
