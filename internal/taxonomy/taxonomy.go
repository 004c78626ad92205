package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Taxonomy is the static configuration the extraction stage runs against.
// All groups are ordered slices, never maps: registration and categorization
// are first-match operations, so iteration order is part of the contract.
type Taxonomy struct {
	SkillCategories []SkillCategory `yaml:"skill_categories"`
	JobCategories   []JobCategory   `yaml:"job_categories"`
	Certifications  []Certification `yaml:"certifications"`
}

type SkillCategory struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

type JobCategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Certification pairs a canonical certification name with the regex that
// detects it in lowercased description text.
type Certification struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// Load reads a YAML taxonomy file. Sections left empty in the file fall back
// to the built-in defaults, so a file can override just the skill list.
func Load(path string) (Taxonomy, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("read taxonomy file: %w", err)
	}

	var t Taxonomy
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Taxonomy{}, fmt.Errorf("parse taxonomy file: %w", err)
	}

	def := Default()
	if len(t.SkillCategories) == 0 {
		t.SkillCategories = def.SkillCategories
	}
	if len(t.JobCategories) == 0 {
		t.JobCategories = def.JobCategories
	}
	if len(t.Certifications) == 0 {
		t.Certifications = def.Certifications
	}

	if err := t.validate(); err != nil {
		return Taxonomy{}, err
	}
	return t, nil
}

func (t Taxonomy) validate() error {
	for _, sc := range t.SkillCategories {
		if strings.TrimSpace(sc.Name) == "" {
			return fmt.Errorf("skill category with empty name")
		}
	}
	for _, jc := range t.JobCategories {
		if strings.TrimSpace(jc.Name) == "" {
			return fmt.Errorf("job category with empty name")
		}
	}
	for _, c := range t.Certifications {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Pattern) == "" {
			return fmt.Errorf("certification entry missing name or pattern")
		}
	}
	return nil
}
