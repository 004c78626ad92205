package corpus

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestJoinSplitList(t *testing.T) {
	if got := JoinList([]string{"AWS", "Python"}); got != "AWS|Python" {
		t.Fatalf("JoinList = %q", got)
	}
	if got := JoinList(nil); got != "" {
		t.Fatalf("JoinList(nil) = %q", got)
	}
	if got := SplitList("AWS|Python"); !reflect.DeepEqual(got, []string{"AWS", "Python"}) {
		t.Fatalf("SplitList = %v", got)
	}
	if got := SplitList(""); got != nil {
		t.Fatalf("SplitList(empty) = %v, want nil", got)
	}
}

func TestJobsCSVRoundTrip(t *testing.T) {
	days := 14.0
	years := 3.0
	jobs := []JobRecord{
		{
			JobID:                   "1",
			Title:                   "Senior Python Developer",
			CompanyName:             "Acme",
			Location:                "Bangalore, Karnataka, India",
			City:                    "Bangalore",
			State:                   "Karnataka",
			Country:                 "India",
			WorkType:                WorkTypeRemote,
			Employees:               "201-500",
			Applications:            120,
			PostedAgo:               "2 weeks ago",
			DaysSincePosted:         &days,
			FullTimeRemote:          "Full-time · Remote",
			IsFullTime:              true,
			ExperienceLevel:         LevelSenior,
			Details:                 "Python, AWS required",
			Skills:                  []string{"AWS", "Python"},
			SkillCount:              2,
			Certifications:          []string{"AWS Certified"},
			JobCategory:             "Developer",
			RequiredExperienceYears: &years,
		},
		{
			JobID:           "2",
			Title:           "QA Engineer",
			CompanyName:     "Globex",
			Location:        "Pune",
			City:            "Pune",
			State:           "Unknown",
			Country:         "India",
			WorkType:        WorkTypeOnSite,
			Employees:       "Not Specified",
			ExperienceLevel: LevelMid,
			JobCategory:     "QA/Testing",
		},
	}

	path := filepath.Join(t.TempDir(), "processed", "jobs.csv")
	if err := WriteJobsCSV(path, jobs); err != nil {
		t.Fatalf("WriteJobsCSV: %v", err)
	}

	got, err := ReadJobsCSV(path)
	if err != nil {
		t.Fatalf("ReadJobsCSV: %v", err)
	}
	if len(got) != len(jobs) {
		t.Fatalf("len = %d, want %d", len(got), len(jobs))
	}

	for i := range jobs {
		want := jobs[i]
		g := got[i]
		if g.JobID != want.JobID || g.Title != want.Title || g.WorkType != want.WorkType {
			t.Fatalf("record %d mismatch: %+v", i, g)
		}
		if !reflect.DeepEqual(g.Skills, want.Skills) {
			t.Fatalf("record %d skills = %v, want %v", i, g.Skills, want.Skills)
		}
		if !reflect.DeepEqual(g.Certifications, want.Certifications) {
			t.Fatalf("record %d certs = %v, want %v", i, g.Certifications, want.Certifications)
		}
		if (g.DaysSincePosted == nil) != (want.DaysSincePosted == nil) {
			t.Fatalf("record %d days nil mismatch", i)
		}
		if g.DaysSincePosted != nil && *g.DaysSincePosted != *want.DaysSincePosted {
			t.Fatalf("record %d days = %v, want %v", i, *g.DaysSincePosted, *want.DaysSincePosted)
		}
		if (g.RequiredExperienceYears == nil) != (want.RequiredExperienceYears == nil) {
			t.Fatalf("record %d years nil mismatch", i)
		}
		if g.IsFullTime != want.IsFullTime || g.Applications != want.Applications {
			t.Fatalf("record %d flags = %v/%d", i, g.IsFullTime, g.Applications)
		}
	}
}

func TestSkillMappingsCSVRoundTrip(t *testing.T) {
	rows := []SkillMappingRow{
		{JobID: "1", Skill: "Python", JobTitle: "Dev", CompanyName: "Acme", Location: "Pune", JobCategory: "Developer"},
		{JobID: "1", Skill: "AWS", JobTitle: "Dev", CompanyName: "Acme", Location: "Pune", JobCategory: "Developer"},
	}

	path := filepath.Join(t.TempDir(), "skills.csv")
	if err := WriteSkillMappingsCSV(path, rows); err != nil {
		t.Fatalf("WriteSkillMappingsCSV: %v", err)
	}

	got, err := ReadSkillMappingsCSV(path)
	if err != nil {
		t.Fatalf("ReadSkillMappingsCSV: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Fatalf("round trip = %v, want %v", got, rows)
	}
}

func TestStoreList(t *testing.T) {
	store := NewStore([]JobRecord{
		{JobID: "1", City: "Pune", WorkType: WorkTypeRemote},
		{JobID: "2", City: "Mumbai", WorkType: WorkTypeOnSite},
		{JobID: "3", City: "Pune", WorkType: WorkTypeOnSite},
		{JobID: "4", City: "Pune", WorkType: WorkTypeRemote},
	})

	jobs, total := store.List(ListFilter{City: "Pune"})
	if total != 3 || len(jobs) != 3 {
		t.Fatalf("city filter: total=%d len=%d", total, len(jobs))
	}

	jobs, total = store.List(ListFilter{City: "Pune", WorkType: WorkTypeRemote})
	if total != 2 || len(jobs) != 2 {
		t.Fatalf("combined filter: total=%d len=%d", total, len(jobs))
	}

	jobs, total = store.List(ListFilter{Limit: 2, Offset: 3})
	if total != 4 || len(jobs) != 1 || jobs[0].JobID != "4" {
		t.Fatalf("pagination: total=%d jobs=%v", total, jobs)
	}

	jobs, total = store.List(ListFilter{Offset: 10})
	if total != 4 || len(jobs) != 0 {
		t.Fatalf("offset past end: total=%d len=%d", total, len(jobs))
	}
}

func TestStoreCities(t *testing.T) {
	store := NewStore([]JobRecord{
		{JobID: "1", City: "Pune"},
		{JobID: "2", City: "Mumbai"},
		{JobID: "3", City: "Pune"},
		{JobID: "4", City: ""},
	})

	want := []string{"Mumbai", "Pune"}
	if got := store.Cities(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Cities = %v, want %v", got, want)
	}
}
