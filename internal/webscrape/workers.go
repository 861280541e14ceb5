package webscrape

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/rajeshr264/puppet-llm-training-project/pkg/fetcher"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/webscraper"
)

type Job struct {
	URL string
}

type Result struct {
	URL        string
	Page       *webscraper.PageResult
	Error      error
	ErrorType  string
	StatusCode int
}

func run(ctx context.Context, logger *slog.Logger, scraper *webscraper.Scraper, urls []string, workerCount, maxRelated int) []Result {
	logger.Info("Starting concurrent scrape phase", "url_count", len(urls), "workers", workerCount, "max_related", maxRelated)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(urls))
	results := make(chan Result, len(urls))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, scraper, &wg, jobs, results, maxRelated)
	}

	for _, rawURL := range urls {
		jobs <- Job{URL: rawURL}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All scrape workers finished")

	allResults := make([]Result, 0, len(urls))
	for result := range results {
		allResults = append(allResults, result)
	}
	return allResults
}

func worker(ctx context.Context, id int, logger *slog.Logger, scraper *webscraper.Scraper, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result, maxRelated int) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "url", job.URL)

		page, err := scraper.ScrapePage(ctx, job.URL, maxRelated)
		result := Result{URL: job.URL, Page: page, StatusCode: 200}
		if err != nil {
			logger.Error("Error scraping page", "worker_id", id, "url", job.URL, "error", err)
			result.Error = err
			result.ErrorType = "fetch_error"
			result.StatusCode = 0

			var statusErr *fetcher.StatusError
			if errors.As(err, &statusErr) {
				result.ErrorType = "http_error"
				result.StatusCode = statusErr.Code
			}
		}

		results <- result
		logger.Info("Worker finished job", "worker_id", id, "url", job.URL)
	}
}
