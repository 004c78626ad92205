package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	App       AppConfig
	Data      DataConfig
	Analytics AnalyticsConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DataConfig struct {
	// DataDir is the root of the flat-file artifact tree:
	// raw/ holds the scraped input, processed/ the pipeline outputs.
	DataDir string
	// TaxonomyFile optionally points to a YAML taxonomy override.
	TaxonomyFile string
	SourceLabel  string
}

type AnalyticsConfig struct {
	TopRoles     int
	TopSkills    int
	TopCompanies int
	TopLocations int
}

func Load() (Config, error) {
	cfg := Config{}

	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "job-trends"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),
	}

	cfg.Data = DataConfig{
		DataDir:      opt("DATA_DIR", "data"),
		TaxonomyFile: opt("TAXONOMY_FILE", ""),
		SourceLabel:  opt("DATA_SOURCE_LABEL", "LinkedIn Job Postings"),
	}

	var err error
	if cfg.Analytics.TopRoles, err = parsePositiveInt(opt("TOP_N_ROLES", "20"), "TOP_N_ROLES"); err != nil {
		return Config{}, err
	}
	if cfg.Analytics.TopSkills, err = parsePositiveInt(opt("TOP_N_SKILLS", "30"), "TOP_N_SKILLS"); err != nil {
		return Config{}, err
	}
	if cfg.Analytics.TopCompanies, err = parsePositiveInt(opt("TOP_N_COMPANIES", "10"), "TOP_N_COMPANIES"); err != nil {
		return Config{}, err
	}
	if cfg.Analytics.TopLocations, err = parsePositiveInt(opt("TOP_N_LOCATIONS", "10"), "TOP_N_LOCATIONS"); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func parsePositiveInt(v, key string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s value %q", key, v)
	}
	return n, nil
}

func (d DataConfig) RawCSV() string {
	return filepath.Join(d.DataDir, "raw", "linkedin_jobs.csv")
}

func (d DataConfig) CleanedCSV() string {
	return filepath.Join(d.DataDir, "processed", "cleaned_jobs.csv")
}

func (d DataConfig) EnrichedCSV() string {
	return filepath.Join(d.DataDir, "processed", "jobs_with_skills.csv")
}

func (d DataConfig) SkillMappingsCSV() string {
	return filepath.Join(d.DataDir, "processed", "skills_extracted.csv")
}

func (d DataConfig) AnalyticsJSON() string {
	return filepath.Join(d.DataDir, "processed", "analytics_summary.json")
}
