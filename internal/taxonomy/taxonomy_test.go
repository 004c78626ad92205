package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsComplete(t *testing.T) {
	tax := Default()

	if len(tax.SkillCategories) == 0 || len(tax.JobCategories) == 0 || len(tax.Certifications) == 0 {
		t.Fatalf("default taxonomy has empty sections: %d/%d/%d",
			len(tax.SkillCategories), len(tax.JobCategories), len(tax.Certifications))
	}
	if err := tax.validate(); err != nil {
		t.Fatalf("default taxonomy invalid: %v", err)
	}
	if tax.JobCategories[0].Name != "Developer" {
		t.Fatalf("first job category = %q, want Developer", tax.JobCategories[0].Name)
	}
}

func TestLoadPartialOverrideFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	doc := `skill_categories:
  - name: Custom
    skills:
      - Python
      - FORTRAN
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	tax, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(tax.SkillCategories) != 1 || tax.SkillCategories[0].Name != "Custom" {
		t.Fatalf("skill categories = %+v", tax.SkillCategories)
	}
	// Sections the file omits keep the defaults.
	if len(tax.JobCategories) == 0 || len(tax.Certifications) == 0 {
		t.Fatalf("omitted sections did not fall back")
	}
}

func TestLoadRejectsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	doc := `certifications:
  - name: ""
    pattern: foo
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
