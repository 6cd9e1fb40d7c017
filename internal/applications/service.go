package applications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recruit-api/internal/shared/ids"
	"recruit-api/internal/shared/metrics"
	"recruit-api/internal/shared/storage/docstore"
	"recruit-api/internal/shared/telemetry"
	"recruit-api/internal/shared/validation"
)

var (
	ErrJobNotFound       = errors.New("job not found for application")
	ErrCandidateNotFound = errors.New("candidate not found")
)

// JobLookup reports whether a job exists.
type JobLookup interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// CandidateLookup reports whether a candidate exists.
type CandidateLookup interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// Service contains business logic for applications.
type Service struct {
	Repo       Repo
	Jobs       JobLookup
	Candidates CandidateLookup
	Now        func() time.Time
}

func NewService(repo Repo, jobs JobLookup, candidates CandidateLookup) *Service {
	return &Service{Repo: repo, Jobs: jobs, Candidates: candidates, Now: time.Now}
}

// Create validates req, checks that the referenced job (and candidate, when
// given) exist, then stores the application. The checks and the insert are
// not atomic.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Application, error) {
	if err := s.ready(); err != nil {
		return Application{}, err
	}
	if err := validation.Validate(req); err != nil {
		return Application{}, err
	}

	jobID, err := ids.Parse(req.JobID)
	if err != nil {
		return Application{}, err
	}
	ok, err := s.Jobs.Exists(ctx, jobID)
	if err != nil {
		return Application{}, fmt.Errorf("check job: %w", err)
	}
	if !ok {
		s.rejected("job_missing", jobID.Hex())
		return Application{}, ErrJobNotFound
	}

	var candidateID *string
	if ref := req.candidateRef(); ref != "" {
		cid, err := ids.Parse(ref)
		if err != nil {
			return Application{}, err
		}
		ok, err := s.Candidates.Exists(ctx, cid)
		if err != nil {
			return Application{}, fmt.Errorf("check candidate: %w", err)
		}
		if !ok {
			s.rejected("candidate_missing", jobID.Hex())
			return Application{}, ErrCandidateNotFound
		}
		hex := cid.Hex()
		candidateID = &hex
	}

	app := req.ToApplication()
	app.ID = ids.New()
	app.JobID = jobID.Hex()
	app.CandidateID = candidateID
	app.CreatedAt = s.now()
	app.UpdatedAt = app.CreatedAt

	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	metrics.IncApplicationsCreated()
	telemetry.Info("application.created", map[string]any{
		"application_id": app.ID.Hex(),
		"job_id":         app.JobID,
		"status":         app.Status,
	})
	return app, nil
}

// List returns applications matching filter. A non-empty JobID must be a
// well-formed id.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Application, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if filter.JobID != "" {
		canonical, err := ids.Canonical(filter.JobID)
		if err != nil {
			return nil, err
		}
		filter.JobID = canonical
	}
	return s.Repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, rawID string) (Application, error) {
	if err := s.ready(); err != nil {
		return Application{}, err
	}
	id, err := ids.Parse(rawID)
	if err != nil {
		return Application{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) rejected(reason, jobID string) {
	metrics.IncApplicationsRejected()
	telemetry.Info("application.rejected", map[string]any{"reason": reason, "job_id": jobID})
}

func (s *Service) ready() error {
	if s == nil || s.Repo == nil || s.Jobs == nil || s.Candidates == nil {
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
