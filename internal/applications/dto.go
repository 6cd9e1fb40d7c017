package applications

import "strings"

// CreateRequest is the POST /api/applications payload.
type CreateRequest struct {
	JobID          string  `json:"job_id" validate:"required"`
	CandidateID    *string `json:"candidate_id"`
	CandidateName  string  `json:"candidate_name" validate:"required"`
	CandidateEmail string  `json:"candidate_email" validate:"required,email,dotted_email"`
	ResumeURL      *string `json:"resume_url"`
	CoverLetter    *string `json:"cover_letter"`
	Status         string  `json:"status"`
}

// ToApplication copies the payload and applies the default status. Reference
// ids are resolved by the service.
func (r CreateRequest) ToApplication() Application {
	status := strings.TrimSpace(r.Status)
	if status == "" {
		status = DefaultStatus
	}
	return Application{
		CandidateName:  r.CandidateName,
		CandidateEmail: r.CandidateEmail,
		ResumeURL:      r.ResumeURL,
		CoverLetter:    r.CoverLetter,
		Status:         status,
	}
}

// candidateRef returns the candidate id, or "" when absent.
func (r CreateRequest) candidateRef() string {
	if r.CandidateID == nil {
		return ""
	}
	return *r.CandidateID
}

// ListFilter holds the optional equality filters of GET /api/applications.
type ListFilter struct {
	JobID  string
	Status string
}
