package candidates

// CreateRequest is the POST /api/candidates payload.
type CreateRequest struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email,dotted_email"`
	Phone           *string  `json:"phone"`
	ResumeURL       *string  `json:"resume_url"`
	ExperienceYears *float64 `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	Skills          []string `json:"skills"`
}

func (r CreateRequest) ToCandidate() Candidate {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return Candidate{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		ResumeURL:       r.ResumeURL,
		ExperienceYears: r.ExperienceYears,
		Skills:          skills,
	}
}
