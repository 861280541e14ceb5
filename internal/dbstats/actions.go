// Package dbstats reports harvest provenance from the tracking database.
package dbstats

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rajeshr264/puppet-llm-training-project/internal/common"
	"github.com/rajeshr264/puppet-llm-training-project/models"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/db"
)

// StatsAction prints per-kind source, access, and harvest counts.
func StatsAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
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

	stats, err := database.Stats()
	if err != nil {
		logger.Error("failed to query stats", "error", err)
		os.Exit(2)
	}

	if len(stats) == 0 {
		fmt.Println("No sources recorded yet")
		return nil
	}

	fmt.Printf("%-8s %8s %8s %8s %10s\n", "KIND", "SOURCES", "ACCESSES", "FAILED", "EXAMPLES")
	for _, stat := range stats {
		fmt.Printf("%-8s %8d %8d %8d %10d\n",
			stat.Kind, stat.SourceCount, stat.AccessCount, stat.FailedCount, stat.ExampleCount)
	}
	return nil
}
