package dto

type JobListItem struct {
	JobID             string   `json:"job_id"`
	Title             string   `json:"title"`
	CompanyName       string   `json:"company_name"`
	Location          string   `json:"location"`
	City              string   `json:"city"`
	WorkType          string   `json:"work_type"`
	ExperienceLevel   string   `json:"experience_level"`
	JobCategory       string   `json:"job_category"`
	Skills            []string `json:"skills"`
	Certifications    []string `json:"certifications"`
	RequiredExpYears  *float64 `json:"required_experience_years,omitempty"`
	DaysSincePosted   *float64 `json:"days_since_posted,omitempty"`
	ApplicationsCount int      `json:"applications"`
	IsFullTime        bool     `json:"is_full_time"`
}

type JobListPage struct {
	Jobs   []JobListItem `json:"jobs"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
