package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile_Apply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harvester.yaml")
	content := `
state: southcarolina
stateName: SouthCarolina
links:
  file: links.txt
  max: 5
storage:
  backend: s3
  bucket: gov-bids2
  region: us-east-1
  prefix: staging
saveFiles: false
workers: 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	cfg := Config{
		BaseURL:   "https://example.gov/",
		Storage:   "fs",
		Prefix:    "prod_gold",
		SaveFiles: true,
	}
	fc.Apply(&cfg)

	if cfg.BaseURL != "https://example.gov/" {
		t.Fatalf("unset file values must not clobber existing config, got %q", cfg.BaseURL)
	}
	if cfg.Storage != "s3" || cfg.S3Bucket != "gov-bids2" || cfg.S3Region != "us-east-1" {
		t.Fatalf("storage section not applied: %+v", cfg)
	}
	if cfg.Prefix != "staging" {
		t.Fatalf("prefix: got %q", cfg.Prefix)
	}
	if cfg.LinksFile != "links.txt" || cfg.MaxLinks != 5 {
		t.Fatalf("links section not applied: %+v", cfg)
	}
	if cfg.SaveFiles {
		t.Fatalf("explicit false must be applied")
	}
	if cfg.Workers != 4 {
		t.Fatalf("workers: got %d", cfg.Workers)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
