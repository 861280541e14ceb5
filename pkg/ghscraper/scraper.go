// Package ghscraper downloads Puppet manifests from GitHub repositories,
// either by listing the full tree through the API or by probing a fixed
// list of well-known manifest paths.
package ghscraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rajeshr264/puppet-llm-training-project/models"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/fetcher"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/storage"
)

const (
	DefaultAPIBase = "https://api.github.com"
	DefaultRawBase = "https://raw.githubusercontent.com"
)

// Well-known manifest locations, probed in order; the first hit per
// repository wins.
var probePaths = []string{
	"main/manifests/init.pp",
	"master/manifests/init.pp",
	"main/manifests/server.pp",
	"main/manifests/install.pp",
	"main/manifests/config.pp",
	"main/manifests/service.pp",
}

// Probed manifests shorter than this are stubs, not usable examples.
const minManifestLen = 50

type Scraper struct {
	fetcher *fetcher.Fetcher
	storage *storage.Storage
	logger  *slog.Logger

	// Base URLs are fields so tests can point at a local server.
	APIBase string
	RawBase string

	OutputDir string
	FileDelay time.Duration
	RepoDelay time.Duration
}

func New(f *fetcher.Fetcher, logger *slog.Logger, outputDir string) *Scraper {
	return &Scraper{
		fetcher:   f,
		storage:   &storage.Storage{},
		logger:    logger,
		APIBase:   DefaultAPIBase,
		RawBase:   DefaultRawBase,
		OutputDir: outputDir,
		FileDelay: 500 * time.Millisecond,
		RepoDelay: 2 * time.Second,
	}
}

type treeEntry struct {
	Path string `json:"path"`
}

type treeResponse struct {
	Tree []treeEntry `json:"tree"`
}

// ScrapeRepo lists the default branch tree, downloads every .pp file, and
// saves each under OutputDir/<owner>_<repo>/ with path separators
// flattened to underscores. Individual file failures are skipped without
// retry; only a failed tree listing aborts the repository.
func (s *Scraper) ScrapeRepo(ctx context.Context, owner, repo string) (int, error) {
	apiURL := fmt.Sprintf("%s/repos/%s/%s/git/trees/main?recursive=1", s.APIBase, owner, repo)
	body, err := s.fetcher.Get(ctx, apiURL)
	if err != nil {
		return 0, fmt.Errorf("failed to list tree for %s/%s: %w", owner, repo, err)
	}

	var tree treeResponse
	if err := json.Unmarshal(body, &tree); err != nil {
		return 0, fmt.Errorf("failed to decode tree for %s/%s: %w", owner, repo, err)
	}

	repoDir := filepath.Join(s.OutputDir, owner+"_"+repo)
	saved := 0
	for _, entry := range tree.Tree {
		if !strings.HasSuffix(entry.Path, ".pp") {
			continue
		}

		rawURL := fmt.Sprintf("%s/%s/%s/main/%s", s.RawBase, owner, repo, entry.Path)
		content, err := s.fetcher.Get(ctx, rawURL)
		if err != nil {
			s.logger.Warn("Skipping file", "repo", owner+"/"+repo, "path", entry.Path, "error", err)
			continue
		}

		// Flatten the path so nested manifests land in one directory
		// without collisions.
		local := filepath.Join(repoDir, strings.ReplaceAll(entry.Path, "/", "_"))
		if err := s.storage.SaveFile(local, content); err != nil {
			s.logger.Warn("Failed to save file", "path", local, "error", err)
			continue
		}
		saved++

		time.Sleep(s.FileDelay)
	}

	return saved, nil
}

// ProbeManifests short-circuits the tree API: for each repository it tries
// the well-known manifest paths directly and takes the first that
// responds. Repositories where nothing responds contribute nothing; that
// is not an error.
func (s *Scraper) ProbeManifests(ctx context.Context, repos []string) []models.Example {
	var examples []models.Example

	for _, repo := range repos {
		owner, name, ok := SplitRepo(repo)
		if !ok {
			continue
		}

		for _, probe := range probePaths {
			rawURL := fmt.Sprintf("%s/%s/%s/%s", s.RawBase, owner, name, probe)
			content, err := s.fetcher.GetText(ctx, rawURL)
			if err != nil {
				continue
			}
			if len(content) <= minManifestLen {
				continue
			}

			module := strings.TrimPrefix(name, "puppetlabs-")
			manifest := strings.TrimSuffix(path.Base(probe), ".pp")
			examples = append(examples, models.Example{
				Code:        content,
				Description: fmt.Sprintf("Puppet %s module - %s manifest", module, manifest),
				Source:      rawURL,
				PuppetScore: models.MaxScore,
				Origin:      models.OriginGithubManifest,
			})

			s.logger.Info("Found manifest", "repo", repo, "manifest", manifest, "bytes", len(content))
			break
		}

		time.Sleep(s.FileDelay)
	}

	return examples
}

// SplitRepo splits an "owner/name" repository identifier.
func SplitRepo(repo string) (owner, name string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(repo), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
