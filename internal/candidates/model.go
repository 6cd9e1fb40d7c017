package candidates

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Candidate is a stored person who may apply to jobs.
type Candidate struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Email           string             `json:"email" bson:"email"`
	Phone           *string            `json:"phone" bson:"phone"`
	ResumeURL       *string            `json:"resume_url" bson:"resume_url"`
	ExperienceYears *float64           `json:"experience_years" bson:"experience_years"`
	Skills          []string           `json:"skills" bson:"skills"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}
