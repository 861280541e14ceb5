package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rajeshr264/puppet-llm-training-project/internal/dataset"
	"github.com/rajeshr264/puppet-llm-training-project/internal/dbstats"
	"github.com/rajeshr264/puppet-llm-training-project/internal/ghscrape"
	"github.com/rajeshr264/puppet-llm-training-project/internal/pdfscrape"
	"github.com/rajeshr264/puppet-llm-training-project/internal/webscrape"
)

func main() {
	app := &cli.App{
		Name:  "puppet-harvest",
		Usage: "Harvest Puppet code examples and build an LLM training dataset",
		Commands: []*cli.Command{
			{
				Name:   "web",
				Usage:  "Scrape web pages and raw manifest URLs for Puppet examples",
				Action: webscrape.WebAction,
				Flags: append(commonFlags(),
					&cli.StringFlag{Name: "urls", Usage: "Comma-separated page URLs (overrides config)"},
					&cli.IntFlag{Name: "workers", Usage: "Concurrent scrape workers"},
					&cli.BoolFlag{Name: "crawl", Usage: "Follow related links one hop from each seed page"},
					&cli.StringFlag{Name: "output-dir", Usage: "Web corpus directory"},
				),
			},
			{
				Name:   "github",
				Usage:  "Download .pp manifests from GitHub repositories",
				Action: ghscrape.GithubAction,
				Flags: append(commonFlags(),
					&cli.StringFlag{Name: "repos", Usage: "Comma-separated owner/name repositories (overrides config)"},
					&cli.StringFlag{Name: "output-dir", Usage: "Raw manifest directory"},
				),
			},
			{
				Name:   "pdf",
				Usage:  "Extract Puppet code blocks from local PDF documents",
				Action: pdfscrape.PDFAction,
				Flags: append(commonFlags(),
					&cli.StringFlag{Name: "pdfs", Usage: "Comma-separated PDF paths (overrides config)"},
					&cli.StringFlag{Name: "output-dir", Usage: "PDF corpus directory"},
				),
			},
			{
				Name:   "dataset",
				Usage:  "Merge harvested corpora into the training and holdout files",
				Action: dataset.BuildAction,
				Flags: append(commonFlags(),
					&cli.StringFlag{Name: "out", Usage: "Training dataset path"},
					&cli.StringFlag{Name: "holdout", Usage: "Holdout dataset path"},
				),
			},
			{
				Name:   "stats",
				Usage:  "Show harvest provenance from the tracking database",
				Action: dbstats.StatsAction,
				Flags:  commonFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "Path to YAML config file"},
		&cli.StringFlag{Name: "db", Usage: "Provenance database path"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
	}
}
