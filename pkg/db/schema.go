package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Sources: every locator the pipeline has touched (page URL, repo slug,
-- local PDF path)
CREATE TABLE IF NOT EXISTS sources (
    source_id INTEGER PRIMARY KEY AUTOINCREMENT,
    locator TEXT NOT NULL UNIQUE,
    kind TEXT NOT NULL,           -- web, github, pdf
    domain TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_sources_kind ON sources(kind);
CREATE INDEX IF NOT EXISTS idx_sources_domain ON sources(domain);

-- Source accesses: every fetch attempt tracked
CREATE TABLE IF NOT EXISTS source_accesses (
    access_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_id INTEGER NOT NULL,
    accessed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    status_code INTEGER,
    error_type TEXT,
    success BOOLEAN NOT NULL,
    FOREIGN KEY (source_id) REFERENCES sources(source_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_accesses_source ON source_accesses(source_id);
CREATE INDEX IF NOT EXISTS idx_accesses_time ON source_accesses(accessed_at);
CREATE INDEX IF NOT EXISTS idx_accesses_success ON source_accesses(success);

-- Harvests: how many examples each pipeline stage pulled from a source
CREATE TABLE IF NOT EXISTS harvests (
    harvest_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_id INTEGER NOT NULL,
    stage TEXT NOT NULL,
    example_count INTEGER NOT NULL,
    harvested_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (source_id) REFERENCES sources(source_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_harvests_source ON harvests(source_id);
CREATE INDEX IF NOT EXISTS idx_harvests_stage ON harvests(stage);

-- Source metadata: key-value storage for per-source metadata (page title,
-- site name, author)
CREATE TABLE IF NOT EXISTS source_metadata (
    metadata_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_id INTEGER NOT NULL,
    key TEXT NOT NULL,
    value TEXT NOT NULL,
    FOREIGN KEY (source_id) REFERENCES sources(source_id) ON DELETE CASCADE,
    UNIQUE(source_id, key)
);

CREATE INDEX IF NOT EXISTS idx_metadata_source ON source_metadata(source_id);
CREATE INDEX IF NOT EXISTS idx_metadata_key ON source_metadata(key);
`
