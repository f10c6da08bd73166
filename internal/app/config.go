package app

import "time"

// Config holds runtime configuration for a harvest run.
type Config struct {
	// BaseURL is the site root relative attachment links resolve against.
	BaseURL string
	// SearchURL is the solicitation search page the lister drives.
	SearchURL string
	// LinksFile, when set, supplies detail-page URLs (one per line) and the
	// browser step is skipped entirely.
	LinksFile string
	// MaxLinks truncates the link list; zero means no limit.
	MaxLinks int

	// State is the lowercase key used in persistence paths, e.g. "southcarolina".
	State string
	// StateName is the display value written into records, e.g. "SouthCarolina".
	StateName string

	// Storage selects the backend: "fs" or "s3".
	Storage string
	// OutDir is the filesystem store root.
	OutDir string
	// Prefix is the leading key segment for all persisted objects.
	Prefix string
	S3Bucket   string
	S3Region   string
	S3Endpoint string

	// SaveFiles controls whether raw attachment bytes are persisted alongside
	// the record.
	SaveFiles bool

	// Workers bounds concurrent solicitation pipelines. Zero or one means
	// fully sequential.
	Workers int

	UserAgent      string
	RequestTimeout time.Duration
	MaxAttempts    int
}
