package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags.
type FileConfig struct {
	BaseURL   string `yaml:"baseURL"`
	SearchURL string `yaml:"searchURL"`
	State     string `yaml:"state"`
	StateName string `yaml:"stateName"`

	Links struct {
		File string `yaml:"file"`
		Max  int    `yaml:"max"`
	} `yaml:"links"`

	Storage struct {
		Backend  string `yaml:"backend"`
		Dir      string `yaml:"dir"`
		Prefix   string `yaml:"prefix"`
		Bucket   string `yaml:"bucket"`
		Region   string `yaml:"region"`
		Endpoint string `yaml:"endpoint"`
	} `yaml:"storage"`

	Fetch struct {
		UserAgent   string        `yaml:"userAgent"`
		Timeout     time.Duration `yaml:"timeout"`
		MaxAttempts int           `yaml:"maxAttempts"`
	} `yaml:"fetch"`

	SaveFiles *bool `yaml:"saveFiles"`
	Workers   int   `yaml:"workers"`
}

// LoadConfigFile parses a YAML config file.
func LoadConfigFile(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// Apply overlays non-zero file values onto cfg. A config file is explicit
// opt-in, so its values win over flag values.
func (fc *FileConfig) Apply(cfg *Config) {
	setString(&cfg.BaseURL, fc.BaseURL)
	setString(&cfg.SearchURL, fc.SearchURL)
	setString(&cfg.State, fc.State)
	setString(&cfg.StateName, fc.StateName)
	setString(&cfg.LinksFile, fc.Links.File)
	if fc.Links.Max > 0 {
		cfg.MaxLinks = fc.Links.Max
	}
	setString(&cfg.Storage, fc.Storage.Backend)
	setString(&cfg.OutDir, fc.Storage.Dir)
	setString(&cfg.Prefix, fc.Storage.Prefix)
	setString(&cfg.S3Bucket, fc.Storage.Bucket)
	setString(&cfg.S3Region, fc.Storage.Region)
	setString(&cfg.S3Endpoint, fc.Storage.Endpoint)
	setString(&cfg.UserAgent, fc.Fetch.UserAgent)
	if fc.Fetch.Timeout > 0 {
		cfg.RequestTimeout = fc.Fetch.Timeout
	}
	if fc.Fetch.MaxAttempts > 0 {
		cfg.MaxAttempts = fc.Fetch.MaxAttempts
	}
	if fc.SaveFiles != nil {
		cfg.SaveFiles = *fc.SaveFiles
	}
	if fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
