package jobs

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

// Service contains business logic for job postings.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// Create validates req and stores a new job.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Job, error) {
	if err := s.ready(); err != nil {
		return Job{}, err
	}
	if err := validation.Validate(req); err != nil {
		return Job{}, err
	}

	job := req.ToJob()
	job.ID = ids.New()
	job.CreatedAt = s.now()
	job.UpdatedAt = job.CreatedAt

	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	metrics.IncJobsCreated()
	telemetry.Info("job.created", map[string]any{"job_id": job.ID.Hex()})
	return job, nil
}

func (s *Service) List(ctx context.Context) ([]Job, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Repo.List(ctx)
}

// Get resolves rawID and loads the job.
func (s *Service) Get(ctx context.Context, rawID string) (Job, error) {
	if err := s.ready(); err != nil {
		return Job{}, err
	}
	id, err := ids.Parse(rawID)
	if err != nil {
		return Job{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

// Exists reports whether a job with id is stored.
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
