package database

import (
	"os"
	"path/filepath"
	"testing"

	"calllog-backend/models"
)

func TestBootstrapRoundTrip(t *testing.T) {
	t.Setenv("BOOTSTRAP_FILE", filepath.Join(t.TempDir(), "db_config.json"))

	want := &models.AppSettings{
		Backend: models.BackendMongo,
		Mongo: &models.MongoSettings{
			URI:      "mongodb://localhost:27017",
			Database: "calllog",
		},
	}
	if err := SaveBootstrap(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := LoadBootstrap()
	if got == nil {
		t.Fatal("load returned nil")
	}
	if got.Backend != want.Backend || got.Mongo == nil || got.Mongo.URI != want.Mongo.URI {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLoadBootstrapMissingFile(t *testing.T) {
	t.Setenv("BOOTSTRAP_FILE", filepath.Join(t.TempDir(), "absent.json"))
	if s := LoadBootstrap(); s != nil {
		t.Fatalf("expected nil for missing file, got %+v", s)
	}
}

func TestLoadBootstrapCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	t.Setenv("BOOTSTRAP_FILE", path)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if s := LoadBootstrap(); s != nil {
		t.Fatalf("expected nil for corrupt file, got %+v", s)
	}
}

func TestLoadBootstrapUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stale.json")
	t.Setenv("BOOTSTRAP_FILE", path)
	if err := os.WriteFile(path, []byte(`{"backend":"oracle"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if s := LoadBootstrap(); s != nil {
		t.Fatalf("expected nil for unknown backend, got %+v", s)
	}
}
