package webscrape

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rajeshr264/puppet-llm-training-project/internal/common"
	"github.com/rajeshr264/puppet-llm-training-project/models"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/corpus"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/curated"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/db"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/fetcher"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/ghscraper"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/webscraper"
)

// WebAction scrapes every configured page, optionally expands the frontier
// one hop through related links, probes the well-known GitHub manifest
// paths, appends the curated examples, and writes the web corpus.
func WebAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("urls") {
		cfg.URLs = strings.Split(c.String("urls"), ",")
	}
	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}
	if c.IsSet("crawl") {
		cfg.CrawlRelated = c.Bool("crawl")
	}
	if c.IsSet("output-dir") {
		cfg.WebDir = c.String("output-dir")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}

	// Sanitize and validate all URLs before processing (fail fast)
	sanitizedURLs, invalidURLs := common.SanitizeAndValidateURLs(cfg.URLs)
	if len(invalidURLs) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d URL(s) are malformed (even after cleanup):\n", len(invalidURLs))
		for _, badURL := range invalidURLs {
			fmt.Fprintf(os.Stderr, "  - %s\n", badURL)
		}
		os.Exit(1)
	}
	cfg.URLs = sanitizedURLs

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	ctx := context.Background()
	f := fetcher.New(cfg.FileDelay.Std())
	scraper := webscraper.New(f, logger)

	maxRelated := 0
	if cfg.CrawlRelated {
		maxRelated = cfg.MaxRelatedLinks
	}

	var allExamples []models.Example
	failed := 0
	processed := make(map[string]bool)

	record := func(result Result) {
		processed[result.URL] = true

		sourceID, dbErr := database.InsertSource(result.URL, db.KindWeb)
		if dbErr != nil {
			logger.Warn("Failed to insert source to DB", "url", result.URL, "error", dbErr)
		}
		if sourceID > 0 {
			if dbErr := database.RecordAccess(sourceID, result.StatusCode, result.ErrorType, result.Error == nil); dbErr != nil {
				logger.Warn("Failed to record access to DB", "url", result.URL, "error", dbErr)
			}
		}

		if result.Error != nil {
			failed++
			return
		}

		if sourceID > 0 {
			if dbErr := database.RecordHarvest(sourceID, "web", len(result.Page.Examples)); dbErr != nil {
				logger.Warn("Failed to record harvest to DB", "url", result.URL, "error", dbErr)
			}
			recordPageContext(database, logger, sourceID, result.Page.Context)
		}

		allExamples = append(allExamples, result.Page.Examples...)
	}

	// First pass over the configured seed pages
	for _, rawURL := range cfg.URLs {
		processed[rawURL] = true
	}
	results := run(ctx, logger, scraper, cfg.URLs, cfg.WorkerCount, maxRelated)

	var frontier []string
	for _, result := range results {
		record(result)
		for _, link := range result.Related() {
			if !processed[link] {
				processed[link] = true
				frontier = append(frontier, link)
			}
		}
	}

	// One hop only: frontier pages never expand further
	if len(frontier) > 0 {
		logger.Info("Expanding frontier", "links", len(frontier))
		for _, result := range run(ctx, logger, scraper, frontier, cfg.WorkerCount, 0) {
			record(result)
		}
	}

	// Well-known manifest probe fills in repos the page scrape never saw
	gh := ghscraper.New(f, logger, cfg.RawDir)
	gh.FileDelay = cfg.FileDelay.Std()
	allExamples = append(allExamples, gh.ProbeManifests(ctx, cfg.Repos)...)

	// Curated examples guarantee a non-empty corpus
	allExamples = append(allExamples, curated.Examples()...)

	store := corpus.NewStore(cfg.WebDir, logger)
	if err := store.WriteExamples(corpus.WebCorpus, allExamples); err != nil {
		logger.Error("failed to write web corpus", "error", err)
		os.Exit(2)
	}

	fmt.Printf("Scraped %d pages (%d failed), %d examples written to %s\n",
		len(processed), failed, len(allExamples), cfg.WebDir)
	return nil
}

// Related returns the links a successful scrape collected; failed scrapes
// contribute none.
func (r Result) Related() []string {
	if r.Error != nil || r.Page == nil {
		return nil
	}
	return r.Page.Related
}

func recordPageContext(database *db.DB, logger *slog.Logger, sourceID int64, pc *webscraper.PageContext) {
	if pc == nil {
		return
	}
	for key, value := range map[string]string{
		"title":     pc.Title,
		"excerpt":   pc.Excerpt,
		"site_name": pc.SiteName,
		"author":    pc.Author,
	} {
		if value == "" {
			continue
		}
		if err := database.SetSourceMetadata(sourceID, key, value); err != nil {
			logger.Warn("Failed to set source metadata", "source_id", sourceID, "key", key, "error", err)
		}
	}
}
