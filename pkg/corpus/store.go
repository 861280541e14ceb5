// Package corpus persists intermediate example corpora: one JSON file of
// extracted examples per pipeline stage, each with a companion summary
// counting records per source.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rajeshr264/puppet-llm-training-project/models"
)

// Canonical intermediate corpus names.
const (
	WebCorpus = "puppet_docs_examples"
	PDFCorpus = "pdf_examples"
)

const summarySuffix = "_summary"

// Summary counts the records in a corpus by source, for quick inspection
// without loading the corpus itself.
type Summary struct {
	TotalExamples    int            `json:"total_examples"`
	ExamplesBySource map[string]int `json:"examples_by_source"`
}

type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// WriteExamples persists a stage's examples plus the per-source summary.
func (s *Store) WriteExamples(name string, examples []models.Example) error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("failed to create corpus directory: %w", err)
	}

	data, err := json.MarshalIndent(examples, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal examples: %w", err)
	}
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		return fmt.Errorf("failed to write corpus %s: %w", name, err)
	}

	summary := Summary{
		TotalExamples:    len(examples),
		ExamplesBySource: make(map[string]int),
	}
	for _, ex := range examples {
		summary.ExamplesBySource[ex.Source]++
	}

	summaryData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(s.path(name+summarySuffix), summaryData, 0644); err != nil {
		return fmt.Errorf("failed to write summary for %s: %w", name, err)
	}

	s.logger.Info("Corpus written", "name", name, "examples", len(examples), "path", s.path(name))
	return nil
}

// LoadExamples reads a stage's corpus. A missing or unreadable file is a
// recoverable condition: the stage simply contributes nothing to the merge.
func (s *Store) LoadExamples(name string) []models.Example {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("Intermediate corpus not found, skipping", "name", name, "path", s.path(name))
		return nil
	}
	if err != nil {
		s.logger.Warn("Failed to read intermediate corpus", "name", name, "error", err)
		return nil
	}

	var examples []models.Example
	if err := json.Unmarshal(data, &examples); err != nil {
		s.logger.Warn("Failed to decode intermediate corpus", "name", name, "error", err)
		return nil
	}
	return examples
}
