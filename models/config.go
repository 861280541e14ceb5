package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML config files can use forms like
// "500ms" or "2s", which yaml.v3 does not decode natively.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped standard-library duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds the source lists and output locations for a harvest run.
// Values come from an optional YAML file; CLI flags override per-run knobs.
type Config struct {
	// URLs are web pages and raw manifest files to scrape.
	URLs []string `yaml:"urls"`

	// Repos are GitHub repositories in "owner/name" form.
	Repos []string `yaml:"repos"`

	// PDFs are local PDF documents to extract from.
	PDFs []string `yaml:"pdfs"`

	WebDir     string `yaml:"web_dir"`
	PDFDir     string `yaml:"pdf_dir"`
	RawDir     string `yaml:"raw_dir"`
	DatasetOut string `yaml:"dataset_out"`
	HoldoutOut string `yaml:"holdout_out"`
	DBPath     string `yaml:"db_path"`

	WorkerCount     int  `yaml:"workers"`
	CrawlRelated    bool `yaml:"crawl_related"`
	MaxRelatedLinks int  `yaml:"max_related_links"`

	// FileDelay spaces sequential file fetches within one repository;
	// RepoDelay spaces repositories. Both exist to be polite to remote
	// hosts, not for correctness.
	FileDelay Duration `yaml:"file_delay"`
	RepoDelay Duration `yaml:"repo_delay"`
}

// DefaultConfig returns the built-in source lists so every command can run
// without a config file.
func DefaultConfig() *Config {
	return &Config{
		URLs: []string{
			"https://raw.githubusercontent.com/puppetlabs/puppetlabs-apache/main/manifests/init.pp",
			"https://raw.githubusercontent.com/puppetlabs/puppetlabs-mysql/main/manifests/server.pp",
			"https://raw.githubusercontent.com/puppetlabs/puppetlabs-stdlib/main/manifests/init.pp",
			"https://raw.githubusercontent.com/puppetlabs/puppet/main/examples/hiera/site.pp",
			"https://raw.githubusercontent.com/puppetlabs/puppet/main/examples/standalone/environments/production/manifests/site.pp",
		},
		Repos: []string{
			"puppetlabs/puppetlabs-apache",
			"puppetlabs/puppetlabs-mysql",
			"puppetlabs/puppetlabs-postgresql",
			"puppetlabs/puppetlabs-nginx",
			"puppetlabs/puppetlabs-stdlib",
		},
		WebDir:          "web_puppet_examples",
		PDFDir:          "pdf_puppet_examples",
		RawDir:          "raw_puppet_data",
		DatasetOut:      "puppet_training_data.json",
		HoldoutOut:      "puppet_test_data.json",
		DBPath:          "puppet-harvest.db",
		WorkerCount:     1,
		MaxRelatedLinks: 10,
		FileDelay:       Duration(500 * time.Millisecond),
		RepoDelay:       Duration(2 * time.Second),
	}
}

// LoadConfig reads a YAML config file, layering it over the defaults.
// A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 1
	}
	return cfg, nil
}
