package corpus

// Work type values after cleaning. Anything else normalizes to
// WorkTypeNotSpecified, so the work-type dimension is never missing.
const (
	WorkTypeRemote       = "Remote"
	WorkTypeOnSite       = "On-site"
	WorkTypeHybrid       = "Hybrid"
	WorkTypeNotSpecified = "Not Specified"
)

// Experience level buckets derived from job titles during cleaning.
const (
	LevelJunior = "Junior"
	LevelMid    = "Mid-Level"
	LevelSenior = "Senior"
)

// JobRecord is one job posting. Upstream ingestion creates it, the
// extraction pipeline attaches the derived fields exactly once, and every
// consumer after that treats it as read-only.
type JobRecord struct {
	JobID        string
	Title        string
	CompanyName  string
	Location     string
	City         string
	State        string
	Country      string
	WorkType     string
	Employees    string
	Applications int
	PostedAgo    string
	// DaysSincePosted is derived from the relative-age text; nil when the
	// source value was absent.
	DaysSincePosted *float64
	FullTimeRemote  string
	IsFullTime      bool
	ExperienceLevel string
	Details         string

	// Derived by the extraction pipeline.
	Skills                  []string
	SkillCount              int
	Certifications          []string
	JobCategory             string
	RequiredExperienceYears *float64
}

// SkillMappingRow is one row of the denormalized (job, skill) fact table.
// The table is purely derived and rebuilt wholesale on every pipeline run.
type SkillMappingRow struct {
	JobID       string
	Skill       string
	JobTitle    string
	CompanyName string
	Location    string
	JobCategory string
}
