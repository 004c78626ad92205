package dto

// RecommendationRequest mirrors the preference panel on the dashboard.
// WorkType and Location accept "Any" (or empty) to disable the filter.
type RecommendationRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	WorkType        string   `json:"work_type"`
	Location        string   `json:"location"`
	Goal            string   `json:"goal"`
}
