package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sadopc/worklog/internal/timesheet"
)

// JSONFile mirrors the entry set into a single JSON document. A missing file
// is a normal first run, not an error.
type JSONFile struct {
	path string
}

type jsonDocument struct {
	Version int               `json:"version"`
	Entries []timesheet.Entry `json:"entries"`
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (j *JSONFile) LoadAll() ([]timesheet.Entry, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", j.path, err)
	}

	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", j.path, err)
	}
	return doc.Entries, nil
}

func (j *JSONFile) SaveAll(entries []timesheet.Entry) error {
	doc := jsonDocument{Version: currentVersion, Entries: entries}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize entries: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(j.path), 0o700); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(j.path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", j.path, err)
	}
	return nil
}

func (j *JSONFile) Close() error { return nil }

// DefaultJSONPath returns ~/.config/worklog/worklog.json
func DefaultJSONPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "worklog", "worklog.json"), nil
}
