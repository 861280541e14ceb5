package pdfextract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/rajeshr264/puppet-llm-training-project/models"
)

// ExtractFile opens a local PDF and scans every page in order. A document
// that opens but yields no candidate blocks is an empty contribution, not
// an error; only a document that cannot be opened at all is.
func ExtractFile(path string, logger *slog.Logger) ([]models.Example, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	scanner := &blockScanner{}
	lastPage := reader.NumPage()

	for pageNum := 1; pageNum <= lastPage; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.Warn("Failed to extract page text", "path", path, "page", pageNum, "error", err)
			continue
		}

		for _, line := range strings.Split(text, "\n") {
			scanner.feed(line, pageNum)
		}
	}

	scanner.finish(lastPage)
	logger.Info("PDF scanned", "path", path, "pages", lastPage, "examples", len(scanner.examples))
	return scanner.examples, nil
}
