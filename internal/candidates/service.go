package candidates

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recruit-api/internal/shared/ids"
	"recruit-api/internal/shared/metrics"
	"recruit-api/internal/shared/storage/docstore"
	"recruit-api/internal/shared/telemetry"
	"recruit-api/internal/shared/validation"
)

// Service contains business logic for candidates.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Candidate, error) {
	if err := s.ready(); err != nil {
		return Candidate{}, err
	}
	if err := validation.Validate(req); err != nil {
		return Candidate{}, err
	}

	candidate := req.ToCandidate()
	candidate.ID = ids.New()
	candidate.CreatedAt = s.now()
	candidate.UpdatedAt = candidate.CreatedAt

	if err := s.Repo.Create(ctx, candidate); err != nil {
		return Candidate{}, err
	}
	metrics.IncCandidatesCreated()
	telemetry.Info("candidate.created", map[string]any{"candidate_id": candidate.ID.Hex()})
	return candidate, nil
}

func (s *Service) List(ctx context.Context) ([]Candidate, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, rawID string) (Candidate, error) {
	if err := s.ready(); err != nil {
		return Candidate{}, err
	}
	id, err := ids.Parse(rawID)
	if err != nil {
		return Candidate{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

// Exists reports whether a candidate with id is stored.
func (s *Service) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	_, err := s.Repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *Service) ready() error {
	if s == nil || s.Repo == nil {
		return docstore.ErrUnavailable
	}
	return nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
