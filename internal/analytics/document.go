package analytics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the analytics document as indented JSON for cross-process
// consumption by the dashboard.
func Save(path string, s Summary) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analytics: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write analytics: %w", err)
	}
	return nil
}

// Load reads an analytics document written by Save.
func Load(path string) (Summary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, err
	}
	var s Summary
	if err := json.Unmarshal(b, &s); err != nil {
		return Summary{}, fmt.Errorf("parse analytics: %w", err)
	}
	return s, nil
}
