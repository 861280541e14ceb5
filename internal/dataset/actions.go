// Package dataset wires corpus merging into the CLI: it loads every
// intermediate corpus, folds in the downloaded raw manifests, and writes
// the final training and holdout files.
package dataset

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rajeshr264/puppet-llm-training-project/internal/common"
	"github.com/rajeshr264/puppet-llm-training-project/models"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/corpus"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/curated"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/dataset"
)

// BuildAction merges every harvested corpus into the final dataset.
// Missing intermediate corpora are skipped; when nothing at all was
// harvested the curated examples alone form the dataset.
func BuildAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("out") {
		cfg.DatasetOut = c.String("out")
	}
	if c.IsSet("holdout") {
		cfg.HoldoutOut = c.String("holdout")
	}

	builder := dataset.NewBuilder(logger)

	webStore := corpus.NewStore(cfg.WebDir, logger)
	pdfStore := corpus.NewStore(cfg.PDFDir, logger)

	builder.AddExamples(webStore.LoadExamples(corpus.WebCorpus), true)
	builder.AddExamples(pdfStore.LoadExamples(corpus.PDFCorpus), false)
	builder.AddManifestDir(cfg.RawDir)

	if builder.Len() == 0 {
		logger.Warn("No harvested examples found, using curated examples only")
		builder.AddExamples(curated.Examples(), false)
	}

	records := builder.Build()
	if err := dataset.WriteDataset(records, cfg.DatasetOut, cfg.HoldoutOut); err != nil {
		logger.Error("failed to write dataset", "error", err)
		os.Exit(2)
	}

	fmt.Printf("Wrote %d training records to %s (%d held out to %s)\n",
		len(records), cfg.DatasetOut, dataset.HoldoutSize(len(records)), cfg.HoldoutOut)
	return nil
}
