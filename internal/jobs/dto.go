package jobs

// CreateRequest is the POST /api/jobs payload.
type CreateRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Location       string   `json:"location" validate:"required"`
	Department     string   `json:"department" validate:"required"`
	EmploymentType string   `json:"employment_type" validate:"required"`
	SalaryMin      *float64 `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax      *float64 `json:"salary_max" validate:"omitempty,gte=0"`
	Skills         []string `json:"skills"`
	IsActive       *bool    `json:"is_active"`
}

// ToJob applies defaults: an empty skills list and is_active=true.
func (r CreateRequest) ToJob() Job {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return Job{
		Title:          r.Title,
		Description:    r.Description,
		Location:       r.Location,
		Department:     r.Department,
		EmploymentType: r.EmploymentType,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		Skills:         skills,
		IsActive:       active,
	}
}
