package dataset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rajeshr264/puppet-llm-training-project/models"
)

const (
	// Records with less code than this are noise regardless of source.
	minCodeLen = 30

	// Web-extracted records additionally need this pattern score.
	minWebScore = 3

	holdoutCap = 50
)

var commentRe = regexp.MustCompile(`(?m)^#\s*(.+?)$`)

// Builder accumulates cleaned training examples from every source, then
// deduplicates, shuffles, and writes the final corpus. It is the sole
// owner of the dedup set; fetch stages only ever hand it finished slices.
type Builder struct {
	logger   *slog.Logger
	examples []models.TrainingExample
	rng      *rand.Rand
}

func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededBuilder fixes the shuffle order, for tests.
func NewSeededBuilder(logger *slog.Logger, seed int64) *Builder {
	return &Builder{
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Len reports how many records have been accumulated so far.
func (b *Builder) Len() int {
	return len(b.examples)
}

// AddExamples filters and cleans a batch of extracted examples.
// webSourced batches get the extra confidence-score gate; all batches get
// the length gate and description repair.
func (b *Builder) AddExamples(examples []models.Example, webSourced bool) {
	kept := 0
	for _, ex := range examples {
		if len(ex.Code) < minCodeLen {
			continue
		}
		if webSourced && ex.PuppetScore < minWebScore {
			continue
		}

		b.examples = append(b.examples, models.TrainingExample{
			Instruction: RepairDescription(ex.Description, ex.Code),
			Output:      CleanCode(ex.Code),
			Source:      ex.Source,
		})
		kept++
	}
	b.logger.Info("Examples added", "offered", len(examples), "kept", kept, "web_sourced", webSourced)
}

// AddManifestDir walks a directory of downloaded .pp manifests and turns
// each into a training example, deriving the instruction from the first
// comment line or the declared class/define name.
func (b *Builder) AddManifestDir(dir string) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".pp") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			b.logger.Warn("Failed to read manifest", "path", path, "error", err)
			return nil
		}
		code := string(content)
		if len(code) < minCodeLen {
			return nil
		}

		b.examples = append(b.examples, models.TrainingExample{
			Instruction: manifestInstruction(code),
			Output:      CleanCode(code),
			Source:      path,
		})
		count++
		return nil
	})
	if err != nil {
		b.logger.Warn("Manifest directory walk failed", "dir", dir, "error", err)
		return
	}
	b.logger.Info("Manifest directory processed", "dir", dir, "manifests", count)
}

// manifestInstruction derives an instruction for a raw manifest file: the
// leading comment if there is one, else the declared name.
func manifestInstruction(code string) string {
	instruction := "Write Puppet code for system configuration"
	if m := classRe.FindStringSubmatch(code); m != nil {
		instruction = "Write a Puppet class named " + m[1]
	} else if m := defineRe.FindStringSubmatch(code); m != nil {
		instruction = "Write a Puppet defined type named " + m[1]
	}

	if m := commentRe.FindStringSubmatch(code); m != nil {
		instruction = strings.TrimSpace(m[1])
	}
	return instruction
}

// Build deduplicates on whitespace-collapsed code, shuffles so that record
// order never correlates with source, and wraps each survivor into its
// final comment-plus-code text form.
func (b *Builder) Build() []models.CorpusRecord {
	seen := make(map[string]bool)
	unique := make([]models.TrainingExample, 0, len(b.examples))
	for _, ex := range b.examples {
		key := CollapseWhitespace(ex.Output)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, ex)
	}

	b.rng.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	records := make([]models.CorpusRecord, len(unique))
	for i, ex := range unique {
		records[i] = models.CorpusRecord{Text: "# " + ex.Instruction + "\n" + ex.Output}
	}

	b.logger.Info("Dataset built", "accumulated", len(b.examples), "unique", len(unique))
	return records
}

// HoldoutSize is the held-out subset size for a corpus of the given total.
func HoldoutSize(total int) int {
	size := total / 10
	if size > holdoutCap {
		size = holdoutCap
	}
	return size
}

// WriteDataset writes the full corpus and the held-out subset (the first
// HoldoutSize records of the already-shuffled list).
func WriteDataset(records []models.CorpusRecord, datasetPath, holdoutPath string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	if err := os.WriteFile(datasetPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	holdout := records[:HoldoutSize(len(records))]
	holdoutData, err := json.MarshalIndent(holdout, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal holdout set: %w", err)
	}
	if err := os.WriteFile(holdoutPath, holdoutData, 0644); err != nil {
		return fmt.Errorf("failed to write holdout set: %w", err)
	}

	return nil
}
