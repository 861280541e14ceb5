package db

import (
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertSource(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tests := []struct {
		name    string
		locator string
		kind    string
	}{
		{name: "web page", locator: "https://example.com/docs", kind: KindWeb},
		{name: "github repo", locator: "puppetlabs/puppetlabs-apache", kind: KindGitHub},
		{name: "local pdf", locator: "books/puppet-guide.pdf", kind: KindPDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sourceID, err := db.InsertSource(tt.locator, tt.kind)
			if err != nil {
				t.Fatalf("InsertSource() error = %v", err)
			}
			if sourceID == 0 {
				t.Error("InsertSource() returned 0 ID")
			}
		})
	}
}

func TestInsertSourceDuplicate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first, err := db.InsertSource("https://example.com/a", KindWeb)
	if err != nil {
		t.Fatalf("InsertSource() error = %v", err)
	}
	second, err := db.InsertSource("https://example.com/a", KindWeb)
	if err != nil {
		t.Fatalf("InsertSource() second call error = %v", err)
	}
	if first != second {
		t.Errorf("duplicate locator got different IDs: %d vs %d", first, second)
	}
}

func TestInsertSourceDomain(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sourceID, err := db.InsertSource("https://docs.example.com/page", KindWeb)
	if err != nil {
		t.Fatalf("InsertSource() error = %v", err)
	}

	var domain string
	if err := db.QueryRow("SELECT domain FROM sources WHERE source_id = ?", sourceID).Scan(&domain); err != nil {
		t.Fatalf("failed to read domain: %v", err)
	}
	if domain != "docs.example.com" {
		t.Errorf("domain = %q, want docs.example.com", domain)
	}
}

func TestRecordAccessAndGetLastAccess(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sourceID, err := db.InsertSource("https://example.com/b", KindWeb)
	if err != nil {
		t.Fatalf("InsertSource() error = %v", err)
	}

	if err := db.RecordAccess(sourceID, 0, "fetch_error", false); err != nil {
		t.Fatalf("RecordAccess() error = %v", err)
	}
	if err := db.RecordAccess(sourceID, 200, "", true); err != nil {
		t.Fatalf("RecordAccess() error = %v", err)
	}

	last, err := db.GetLastAccess(sourceID)
	if err != nil {
		t.Fatalf("GetLastAccess() error = %v", err)
	}
	if last == nil {
		t.Fatal("GetLastAccess() returned nil for accessed source")
	}
	if !last.Success || last.StatusCode != 200 {
		t.Errorf("last access = %+v, want the successful 200", last)
	}
}

func TestGetLastAccessNoRows(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sourceID, err := db.InsertSource("https://example.com/c", KindWeb)
	if err != nil {
		t.Fatalf("InsertSource() error = %v", err)
	}

	last, err := db.GetLastAccess(sourceID)
	if err != nil {
		t.Fatalf("GetLastAccess() error = %v", err)
	}
	if last != nil {
		t.Errorf("GetLastAccess() = %+v, want nil for never-accessed source", last)
	}
}

func TestSetSourceMetadataUpsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sourceID, err := db.InsertSource("https://example.com/d", KindWeb)
	if err != nil {
		t.Fatalf("InsertSource() error = %v", err)
	}

	if err := db.SetSourceMetadata(sourceID, "title", "First Title"); err != nil {
		t.Fatalf("SetSourceMetadata() error = %v", err)
	}
	if err := db.SetSourceMetadata(sourceID, "title", "Updated Title"); err != nil {
		t.Fatalf("SetSourceMetadata() upsert error = %v", err)
	}

	var value string
	err = db.QueryRow("SELECT value FROM source_metadata WHERE source_id = ? AND key = 'title'", sourceID).Scan(&value)
	if err != nil {
		t.Fatalf("failed to read metadata: %v", err)
	}
	if value != "Updated Title" {
		t.Errorf("metadata value = %q, want the updated one", value)
	}
}

func TestStats(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	webID, _ := db.InsertSource("https://example.com/e", KindWeb)
	ghID, _ := db.InsertSource("puppetlabs/stdlib", KindGitHub)

	if err := db.RecordAccess(webID, 200, "", true); err != nil {
		t.Fatal(err)
	}
	if err := db.RecordAccess(webID, 404, "http_error", false); err != nil {
		t.Fatal(err)
	}
	if err := db.RecordAccess(ghID, 200, "", true); err != nil {
		t.Fatal(err)
	}
	if err := db.RecordHarvest(webID, "web", 5); err != nil {
		t.Fatal(err)
	}
	if err := db.RecordHarvest(ghID, "github", 12); err != nil {
		t.Fatal(err)
	}

	stats, err := db.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d stat rows, want 2", len(stats))
	}

	byKind := make(map[string]SourceStat)
	for _, stat := range stats {
		byKind[stat.Kind] = stat
	}

	web := byKind[KindWeb]
	if web.SourceCount != 1 || web.AccessCount != 2 || web.FailedCount != 1 || web.ExampleCount != 5 {
		t.Errorf("web stats = %+v", web)
	}
	gh := byKind[KindGitHub]
	if gh.SourceCount != 1 || gh.AccessCount != 1 || gh.FailedCount != 0 || gh.ExampleCount != 12 {
		t.Errorf("github stats = %+v", gh)
	}
}
