package extract

import (
	"reflect"
	"testing"

	"job-trends/internal/dictionary"
	"job-trends/internal/taxonomy"
)

func newTestExtractor() *Extractor {
	tax := taxonomy.Default()
	return New(dictionary.Build(tax.SkillCategories), tax)
}

func TestSkills(t *testing.T) {
	e := newTestExtractor()

	got := e.Skills("We need strong Python, AWS and scikit-learn experience.")
	want := []string{"AWS", "Python", "scikit-learn"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Skills = %v, want %v", got, want)
	}
}

func TestSkillsJavaVersusJavaScript(t *testing.T) {
	e := newTestExtractor()

	got := e.Skills("Senior JavaScript engineer")
	if !reflect.DeepEqual(got, []string{"JavaScript"}) {
		t.Fatalf("Skills = %v, want [JavaScript]", got)
	}

	got = e.Skills("Java and JavaScript, both required")
	if !reflect.DeepEqual(got, []string{"Java", "JavaScript"}) {
		t.Fatalf("Skills = %v, want [Java JavaScript]", got)
	}
}

func TestSkillsVariantForms(t *testing.T) {
	e := newTestExtractor()

	got := e.Skills("backend built on nodejs")
	if !reflect.DeepEqual(got, []string{"Node.js"}) {
		t.Fatalf("Skills = %v, want [Node.js]", got)
	}
}

func TestSkillsEmptyText(t *testing.T) {
	e := newTestExtractor()

	if got := e.Skills(""); got != nil {
		t.Fatalf("Skills(empty) = %v, want nil", got)
	}
	if got := e.Skills("   "); got != nil {
		t.Fatalf("Skills(blank) = %v, want nil", got)
	}
}

func TestCertifications(t *testing.T) {
	e := newTestExtractor()

	got := e.Certifications("Candidates must be AWS Certified; PMP is a plus.")
	want := []string{"AWS Certified", "PMP"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Certifications = %v, want %v", got, want)
	}

	if got := e.Certifications("no credentials mentioned"); got != nil {
		t.Fatalf("Certifications = %v, want nil", got)
	}
}

func TestCertificationsWordBounded(t *testing.T) {
	e := newTestExtractor()

	// "itil" must not fire inside a larger word.
	if got := e.Certifications("we value versatility"); got != nil {
		t.Fatalf("Certifications = %v, want nil", got)
	}
	got := e.Certifications("ITIL certification preferred")
	if !reflect.DeepEqual(got, []string{"ITIL"}) {
		t.Fatalf("Certifications = %v, want [ITIL]", got)
	}
}

func TestCategorizeRole(t *testing.T) {
	e := newTestExtractor()

	cases := []struct {
		title string
		want  string
	}{
		{"Senior Software Engineer", "Developer"},
		{"Data Scientist", "Data Professional"},
		{"QA Engineer", "QA/Testing"},
		{"DevOps Specialist", "DevOps"},
		{"Accountant", CategoryOther},
		{"", CategoryOther},
	}
	for _, tc := range cases {
		if got := e.CategorizeRole(tc.title); got != tc.want {
			t.Fatalf("CategorizeRole(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestCategorizeRoleFirstMatchWins(t *testing.T) {
	e := newTestExtractor()

	// Hits both "software engineer" (Developer) and "qa" keywords; the
	// earlier category in the taxonomy wins.
	if got := e.CategorizeRole("Software Engineer, QA"); got != "Developer" {
		t.Fatalf("CategorizeRole = %q, want Developer", got)
	}
}

func TestExperienceYears(t *testing.T) {
	e := newTestExtractor()

	cases := []struct {
		text  string
		title string
		want  float64
	}{
		{"3+ years of backend experience", "", 3},
		{"requires 7 years in the field", "", 7},
		{"minimum 1 year experience", "", 1},
		{"", "Engineer (4 years exp)", 4},
		// The single-number pattern fires first, so a range resolves to
		// its upper bound, the first bare "N years" occurrence.
		{"3-5 years of experience", "", 5},
	}
	for _, tc := range cases {
		got := e.ExperienceYears(tc.text, tc.title)
		if got == nil {
			t.Fatalf("ExperienceYears(%q, %q) = nil, want %v", tc.text, tc.title, tc.want)
		}
		if *got != tc.want {
			t.Fatalf("ExperienceYears(%q, %q) = %v, want %v", tc.text, tc.title, *got, tc.want)
		}
	}
}

func TestExperienceYearsAbsent(t *testing.T) {
	e := newTestExtractor()

	if got := e.ExperienceYears("seasoned professional wanted", "Architect"); got != nil {
		t.Fatalf("ExperienceYears = %v, want nil", *got)
	}
	if got := e.ExperienceYears("", ""); got != nil {
		t.Fatalf("ExperienceYears(empty) = %v, want nil", *got)
	}
}
