package jobs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is a stored job posting.
type Job struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description" bson:"description"`
	Location       string             `json:"location" bson:"location"`
	Department     string             `json:"department" bson:"department"`
	EmploymentType string             `json:"employment_type" bson:"employment_type"`
	SalaryMin      *float64           `json:"salary_min" bson:"salary_min"`
	SalaryMax      *float64           `json:"salary_max" bson:"salary_max"`
	Skills         []string           `json:"skills" bson:"skills"`
	IsActive       bool               `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}
