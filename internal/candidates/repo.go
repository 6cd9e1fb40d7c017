package candidates

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recruit-api/internal/shared/storage/docstore"
)

var ErrNotFound = errors.New("candidate not found")

// Repo defines persistence operations for candidates.
type Repo interface {
	Create(ctx context.Context, candidate Candidate) error
	List(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Candidate, error)
}

// StoreRepo implements Repo on a document store collection.
type StoreRepo struct {
	Coll docstore.Collection
}

func (r *StoreRepo) Create(ctx context.Context, candidate Candidate) error {
	return r.Coll.InsertOne(ctx, candidate.ID, candidate)
}

func (r *StoreRepo) List(ctx context.Context) ([]Candidate, error) {
	var out []Candidate
	if err := r.Coll.Find(ctx, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Candidate{}
	}
	return out, nil
}

func (r *StoreRepo) GetByID(ctx context.Context, id primitive.ObjectID) (Candidate, error) {
	var candidate Candidate
	if err := r.Coll.FindByID(ctx, id, &candidate); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	return candidate, nil
}

var _ Repo = (*StoreRepo)(nil)
