// Package ghscrape wires the GitHub repository scrape into the CLI:
// tree listing, manifest download, and per-repository provenance records.
package ghscrape

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rajeshr264/puppet-llm-training-project/internal/common"
	"github.com/rajeshr264/puppet-llm-training-project/models"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/db"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/fetcher"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/ghscraper"
)

// GithubAction downloads every .pp file from the configured repositories
// into the raw manifest directory. A failing repository never aborts its
// siblings; each attempt is recorded either way.
func GithubAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("repos") {
		cfg.Repos = strings.Split(c.String("repos"), ",")
	}
	if c.IsSet("output-dir") {
		cfg.RawDir = c.String("output-dir")
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

	ctx := context.Background()
	f := fetcher.New(cfg.FileDelay.Std())
	scraper := ghscraper.New(f, logger, cfg.RawDir)
	scraper.FileDelay = cfg.FileDelay.Std()
	scraper.RepoDelay = cfg.RepoDelay.Std()

	totalSaved := 0
	failed := 0
	for i, repo := range cfg.Repos {
		owner, name, ok := ghscraper.SplitRepo(repo)
		if !ok {
			logger.Warn("Skipping malformed repo identifier", "repo", repo)
			continue
		}

		sourceID, dbErr := database.InsertSource(owner+"/"+name, db.KindGitHub)
		if dbErr != nil {
			logger.Warn("Failed to insert source to DB", "repo", repo, "error", dbErr)
		}

		saved, err := scraper.ScrapeRepo(ctx, owner, name)
		if err != nil {
			logger.Error("Repository scrape failed", "repo", repo, "error", err)
			failed++
		} else {
			logger.Info("Repository scraped", "repo", repo, "files_saved", saved)
			totalSaved += saved
		}

		if sourceID > 0 {
			statusCode := 200
			errorType := ""
			if err != nil {
				statusCode = 0
				errorType = "fetch_error"
				var statusErr *fetcher.StatusError
				if errors.As(err, &statusErr) {
					errorType = "http_error"
					statusCode = statusErr.Code
				}
			}
			if dbErr := database.RecordAccess(sourceID, statusCode, errorType, err == nil); dbErr != nil {
				logger.Warn("Failed to record access to DB", "repo", repo, "error", dbErr)
			}
			if err == nil {
				if dbErr := database.RecordHarvest(sourceID, "github", saved); dbErr != nil {
					logger.Warn("Failed to record harvest to DB", "repo", repo, "error", dbErr)
				}
			}
		}

		if i < len(cfg.Repos)-1 {
			time.Sleep(cfg.RepoDelay.Std())
		}
	}

	fmt.Printf("Downloaded %d manifests from %d repositories (%d failed) to %s\n",
		totalSaved, len(cfg.Repos), failed, cfg.RawDir)
	return nil
}
