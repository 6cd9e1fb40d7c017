package applications

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultStatus is assigned when a submission omits status.
const DefaultStatus = "submitted"

// Application links a job to an applicant. JobID and CandidateID hold the
// lowercase hex form of the referenced records' ids.
type Application struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	JobID          string             `json:"job_id" bson:"job_id"`
	CandidateID    *string            `json:"candidate_id" bson:"candidate_id"`
	CandidateName  string             `json:"candidate_name" bson:"candidate_name"`
	CandidateEmail string             `json:"candidate_email" bson:"candidate_email"`
	ResumeURL      *string            `json:"resume_url" bson:"resume_url"`
	CoverLetter    *string            `json:"cover_letter" bson:"cover_letter"`
	Status         string             `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}
