package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/govbids/harvester/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// .env carries AWS credentials for the S3 backend; absence is fine.
	_ = godotenv.Load()

	var (
		configPath string
		baseURL    string
		searchURL  string
		linksFile  string
		maxLinks   int
		state      string
		stateName  string
		storage    string
		outDir     string
		prefix     string
		s3Bucket   string
		s3Region   string
		s3Endpoint string
		saveFiles  bool
		workers    int
		userAgent  string
		timeout    time.Duration
		attempts   int
		verbose    bool
	)

	flag.StringVar(&configPath, "config", "", "Path to optional YAML config file (file values win over flags)")
	flag.StringVar(&baseURL, "base", "https://webprod.cio.sc.gov/SCSolicitationWeb/", "Site root used to resolve relative attachment links")
	flag.StringVar(&searchURL, "search", "https://webprod.cio.sc.gov/SCSolicitationWeb/solicitationSearch.do?d-49653-p=1", "Solicitation search page driven by the headless browser")
	flag.StringVar(&linksFile, "links", "", "Path to a file of detail-page URLs, one per line; skips the browser step")
	flag.IntVar(&maxLinks, "max.links", 0, "Process at most this many solicitations (0 = all)")
	flag.StringVar(&state, "state", "southcarolina", "State key used in persistence paths")
	flag.StringVar(&stateName, "state.name", "SouthCarolina", "State value written into records")
	flag.StringVar(&storage, "storage", "fs", "Storage backend: fs or s3")
	flag.StringVar(&outDir, "out", ".", "Root directory for the fs storage backend")
	flag.StringVar(&prefix, "prefix", "prod_gold", "Leading key segment for all persisted objects")
	flag.StringVar(&s3Bucket, "s3.bucket", os.Getenv("S3_BUCKET"), "Bucket for the s3 storage backend")
	flag.StringVar(&s3Region, "s3.region", os.Getenv("AWS_REGION"), "Region for the s3 storage backend")
	flag.StringVar(&s3Endpoint, "s3.endpoint", os.Getenv("S3_ENDPOINT"), "Custom S3 endpoint (enables path-style addressing)")
	flag.BoolVar(&saveFiles, "save", true, "Persist raw attachment bytes alongside each record")
	flag.IntVar(&workers, "workers", 1, "Concurrent solicitation pipelines")
	flag.StringVar(&userAgent, "ua", "govbids-harvester/1.0 (+https://github.com/govbids/harvester)", "User-Agent for page and attachment requests")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Per-request timeout")
	flag.IntVar(&attempts, "attempts", 3, "Attempts per request including the first")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		BaseURL:        baseURL,
		SearchURL:      searchURL,
		LinksFile:      linksFile,
		MaxLinks:       maxLinks,
		State:          state,
		StateName:      stateName,
		Storage:        storage,
		OutDir:         outDir,
		Prefix:         prefix,
		S3Bucket:       s3Bucket,
		S3Region:       s3Region,
		S3Endpoint:     s3Endpoint,
		SaveFiles:      saveFiles,
		Workers:        workers,
		UserAgent:      userAgent,
		RequestTimeout: timeout,
		MaxAttempts:    attempts,
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config file")
		}
		fc.Apply(&cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := app.Run(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
	for _, r := range results {
		if r.Outcome == app.OutcomeFailed {
			os.Exit(1)
		}
	}
}
