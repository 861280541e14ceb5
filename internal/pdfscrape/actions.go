// Package pdfscrape wires PDF block extraction into the CLI and writes
// the PDF intermediate corpus.
package pdfscrape

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rajeshr264/puppet-llm-training-project/internal/common"
	"github.com/rajeshr264/puppet-llm-training-project/models"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/corpus"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/db"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/pdfextract"
)

// PDFAction scans every configured PDF for Puppet code blocks. An
// unreadable document is recorded and skipped; the corpus is written even
// when empty so the dataset stage sees a consistent layout.
func PDFAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("pdfs") {
		cfg.PDFs = strings.Split(c.String("pdfs"), ",")
	}
	if c.IsSet("output-dir") {
		cfg.PDFDir = c.String("output-dir")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	var allExamples []models.Example
	failed := 0
	for _, path := range cfg.PDFs {
		sourceID, dbErr := database.InsertSource(path, db.KindPDF)
		if dbErr != nil {
			logger.Warn("Failed to insert source to DB", "path", path, "error", dbErr)
		}

		examples, err := pdfextract.ExtractFile(path, logger)
		if err != nil {
			logger.Error("PDF extraction failed", "path", path, "error", err)
			failed++
		}

		if sourceID > 0 {
			errorType := ""
			if err != nil {
				errorType = "read_error"
			}
			if dbErr := database.RecordAccess(sourceID, 0, errorType, err == nil); dbErr != nil {
				logger.Warn("Failed to record access to DB", "path", path, "error", dbErr)
			}
			if err == nil {
				if dbErr := database.RecordHarvest(sourceID, "pdf", len(examples)); dbErr != nil {
					logger.Warn("Failed to record harvest to DB", "path", path, "error", dbErr)
				}
			}
		}

		allExamples = append(allExamples, examples...)
	}

	store := corpus.NewStore(cfg.PDFDir, logger)
	if err := store.WriteExamples(corpus.PDFCorpus, allExamples); err != nil {
		logger.Error("failed to write PDF corpus", "error", err)
		os.Exit(2)
	}

	fmt.Printf("Scanned %d PDFs (%d failed), %d examples written to %s\n",
		len(cfg.PDFs), failed, len(allExamples), cfg.PDFDir)
	return nil
}
