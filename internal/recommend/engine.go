package recommend

import (
	"sort"

	"job-trends/internal/corpus"
)

// AnyFilter disables the work-type or location filter.
const AnyFilter = "Any"

const (
	missingSkillsLimit = 20
	learningPathLimit  = 15
	roleListLimit      = 5
	roleSkillsLimit    = 10

	// Demand above this threshold bumps the learning-time estimate to the
	// longer bucket. A coarse two-bucket heuristic, nothing more.
	highDemandThreshold = 100
)

// Preferences is the user input to one recommendation request.
type Preferences struct {
	UserSkills      []string
	ExperienceYears float64
	WorkType        string
	Location        string
	Goal            string
}

// RoleRecommendation aggregates scored jobs sharing a title.
type RoleRecommendation struct {
	Title         string   `json:"title"`
	MatchScore    float64  `json:"match_score"`
	JobCount      int      `json:"job_count"`
	TopCompanies  []string `json:"top_companies"`
	Locations     []string `json:"locations"`
	WorkTypes     []string `json:"work_types"`
	SkillsYouHave []string `json:"skills_you_have"`
	SkillsToLearn []string `json:"skills_to_learn"`
}

type MissingSkill struct {
	Skill  string `json:"skill"`
	Demand int    `json:"demand"`
}

type SkillValue struct {
	Skill string `json:"skill"`
	Value int    `json:"value"`
}

type LearningStep struct {
	Skill        string `json:"skill"`
	Demand       int    `json:"demand"`
	LearningTime string `json:"learning_time"`
}

// Report is recomputed per request and never cached.
type Report struct {
	TotalJobs      int                  `json:"total_jobs"`
	MatchingJobs   int                  `json:"matching_jobs"`
	AvgMatchScore  float64              `json:"avg_match_score"`
	SkillsGap      int                  `json:"skills_gap"`
	TopRoles       []RoleRecommendation `json:"top_roles"`
	MissingSkills  []MissingSkill       `json:"missing_skills"`
	YourSkillValue []SkillValue         `json:"your_skill_value"`
	LearningPath   []LearningStep       `json:"learning_path"`
}

type jobScore struct {
	title         string
	company       string
	location      string
	workType      string
	matchScore    float64
	skillsYouHave []string
	skillsToLearn []string
	jobSkills     []string
}

// Recommend scores every job in the (optionally filtered) corpus against
// the user's skill set and aggregates the results by role. The full ranked
// role list is returned; presentation truncation is the caller's concern.
// An empty skill set yields a degenerate all-zero report, and an empty
// filtered corpus yields empty rankings — neither is an error.
func Recommend(jobs []corpus.JobRecord, prefs Preferences) Report {
	userSet := make(map[string]struct{}, len(prefs.UserSkills))
	for _, s := range prefs.UserSkills {
		userSet[s] = struct{}{}
	}

	scores := make([]jobScore, 0, len(jobs))
	for _, j := range jobs {
		if prefs.WorkType != "" && prefs.WorkType != AnyFilter && j.WorkType != prefs.WorkType {
			continue
		}
		if prefs.Location != "" && prefs.Location != AnyFilter && j.City != prefs.Location {
			continue
		}
		scores = append(scores, scoreJob(j, userSet))
	}

	report := Report{TotalJobs: len(scores)}
	if len(scores) == 0 {
		report.TopRoles = []RoleRecommendation{}
		report.MissingSkills = []MissingSkill{}
		report.YourSkillValue = []SkillValue{}
		report.LearningPath = []LearningStep{}
		return report
	}

	report.TopRoles = aggregateRoles(scores)
	report.MissingSkills = missingSkillDemand(scores)
	report.YourSkillValue = skillValues(prefs.UserSkills, scores)
	report.LearningPath = learningPath(report.MissingSkills)
	report.SkillsGap = len(report.MissingSkills)

	var total float64
	for _, s := range scores {
		total += s.matchScore
		if s.matchScore > 0 {
			report.MatchingJobs++
		}
	}
	report.AvgMatchScore = total / float64(len(scores))

	return report
}

// scoreJob computes the percentage overlap between the user's skills and a
// job's required skills, relative to the job's skill-set size. A job with
// no extracted skills scores exactly 0: it can never be matched.
func scoreJob(j corpus.JobRecord, userSet map[string]struct{}) jobScore {
	s := jobScore{
		title:     j.Title,
		company:   j.CompanyName,
		location:  j.City,
		workType:  j.WorkType,
		jobSkills: j.Skills,
	}

	for _, skill := range j.Skills {
		if _, ok := userSet[skill]; ok {
			s.skillsYouHave = append(s.skillsYouHave, skill)
		} else {
			s.skillsToLearn = append(s.skillsToLearn, skill)
		}
	}

	if len(j.Skills) > 0 {
		s.matchScore = float64(len(s.skillsYouHave)) / float64(len(j.Skills)) * 100
	}
	return s
}

type roleAccumulator struct {
	jobCount      int
	totalScore    float64
	companies     map[string]struct{}
	locations     map[string]struct{}
	workTypes     map[string]struct{}
	skillsYouHave *freqCounter
	skillsToLearn *freqCounter
}

func aggregateRoles(scores []jobScore) []RoleRecommendation {
	byTitle := make(map[string]*roleAccumulator)
	var order []string

	for _, s := range scores {
		acc := byTitle[s.title]
		if acc == nil {
			acc = &roleAccumulator{
				companies:     make(map[string]struct{}),
				locations:     make(map[string]struct{}),
				workTypes:     make(map[string]struct{}),
				skillsYouHave: newFreqCounter(),
				skillsToLearn: newFreqCounter(),
			}
			byTitle[s.title] = acc
			order = append(order, s.title)
		}

		acc.jobCount++
		acc.totalScore += s.matchScore
		acc.companies[s.company] = struct{}{}
		acc.locations[s.location] = struct{}{}
		acc.workTypes[s.workType] = struct{}{}
		// Frequencies are counted across job instances, not deduplicated
		// per role.
		for _, skill := range s.skillsYouHave {
			acc.skillsYouHave.Add(skill)
		}
		for _, skill := range s.skillsToLearn {
			acc.skillsToLearn.Add(skill)
		}
	}

	roles := make([]RoleRecommendation, 0, len(order))
	for _, title := range order {
		acc := byTitle[title]
		roles = append(roles, RoleRecommendation{
			Title:         title,
			MatchScore:    acc.totalScore / float64(acc.jobCount),
			JobCount:      acc.jobCount,
			TopCompanies:  sortedTruncated(acc.companies, roleListLimit),
			Locations:     sortedTruncated(acc.locations, roleListLimit),
			WorkTypes:     sortedTruncated(acc.workTypes, 0),
			SkillsYouHave: acc.skillsYouHave.MostCommon(roleSkillsLimit),
			SkillsToLearn: acc.skillsToLearn.MostCommon(roleSkillsLimit),
		})
	}

	// Higher average match wins; ties go to the role with more jobs. The
	// stable sort keeps first-encountered order beyond that, so rankings
	// never depend on map iteration.
	sort.SliceStable(roles, func(i, j int) bool {
		if roles[i].MatchScore != roles[j].MatchScore {
			return roles[i].MatchScore > roles[j].MatchScore
		}
		return roles[i].JobCount > roles[j].JobCount
	})
	return roles
}

// missingSkillDemand counts every skills-to-learn entry across all scored
// jobs: a skill missing in five jobs carries demand 5, not 1.
func missingSkillDemand(scores []jobScore) []MissingSkill {
	c := newFreqCounter()
	for _, s := range scores {
		for _, skill := range s.skillsToLearn {
			c.Add(skill)
		}
	}

	out := make([]MissingSkill, 0, missingSkillsLimit)
	for _, e := range c.Ranked(missingSkillsLimit) {
		out = append(out, MissingSkill{Skill: e.key, Demand: e.count})
	}
	return out
}

// skillValues reports, for each skill the user already has, how many
// filtered jobs require it. Skills with zero demand are dropped.
func skillValues(userSkills []string, scores []jobScore) []SkillValue {
	out := make([]SkillValue, 0, len(userSkills))
	for _, skill := range userSkills {
		count := 0
		for _, s := range scores {
			for _, js := range s.jobSkills {
				if js == skill {
					count++
					break
				}
			}
		}
		if count > 0 {
			out = append(out, SkillValue{Skill: skill, Value: count})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

func learningPath(missing []MissingSkill) []LearningStep {
	limit := learningPathLimit
	if limit > len(missing) {
		limit = len(missing)
	}

	path := make([]LearningStep, 0, limit)
	for _, m := range missing[:limit] {
		estimate := "1-2 weeks"
		if m.Demand > highDemandThreshold {
			estimate = "2-4 weeks"
		}
		path = append(path, LearningStep{Skill: m.Skill, Demand: m.Demand, LearningTime: estimate})
	}
	return path
}

func sortedTruncated(set map[string]struct{}, limit int) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
