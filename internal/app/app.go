// Package app wires the harvest pipeline together: fetch a detail page,
// discover attachments, classify and extract each one, normalize the text,
// scrape the page metadata, and persist the assembled record.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/govbids/harvester/internal/classify"
	"github.com/govbids/harvester/internal/detail"
	"github.com/govbids/harvester/internal/extract"
	"github.com/govbids/harvester/internal/fetch"
	"github.com/govbids/harvester/internal/lister"
	"github.com/govbids/harvester/internal/normalize"
	"github.com/govbids/harvester/internal/record"
	"github.com/govbids/harvester/internal/store"
)

// Outcome classifies how far one solicitation got.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePartial Outcome = "partial"
	OutcomeFailed  Outcome = "failed"
)

// Result summarizes one solicitation's processing for the run report.
type Result struct {
	Link      string
	ID        string
	Outcome   Outcome
	Documents int
	Extracted int
	Err       error
}

// documentResult is the per-document unit of failure isolation: one entry per
// attachment candidate, carrying either extracted text or the error that
// stopped it. Collecting these as values keeps continue-on-failure a data
// property instead of scattered control flow.
type documentResult struct {
	Candidate detail.Candidate
	Format    classify.Format
	Data      []byte
	Text      string
	HasText   bool
	Err       error
}

// Run processes every solicitation link and returns per-solicitation results.
// Failures are isolated at the smallest unit: a bad document never fails its
// solicitation, a bad solicitation never fails the run.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	links, err := resolveLinks(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.MaxLinks > 0 && len(links) > cfg.MaxLinks {
		links = links[:cfg.MaxLinks]
	}
	if len(links) == 0 {
		return nil, fmt.Errorf("no solicitation links to process")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", cfg.BaseURL, err)
	}

	st, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		MaxAttempts:       cfg.MaxAttempts,
		PerRequestTimeout: cfg.RequestTimeout,
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(links))
	records := make([]*record.Solicitation, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			res, rec := processSolicitation(gctx, client, st, base, cfg, link)
			results[i] = res
			records[i] = rec
			return nil
		})
	}
	// Workers only report through the results slice.
	_ = g.Wait()

	// Batch output: every solicitation that reached metadata extraction, in
	// input order.
	batch := make([]record.Solicitation, 0, len(records))
	for _, rec := range records {
		if rec != nil {
			batch = append(batch, *rec)
		}
	}
	batchJSON, err := json.MarshalIndent(batch, "", "    ")
	if err != nil {
		return results, fmt.Errorf("marshal batch: %w", err)
	}
	if err := st.Put(ctx, store.BatchKey(cfg.Prefix), batchJSON); err != nil {
		return results, fmt.Errorf("persist batch: %w", err)
	}

	var succeeded, partial, failed int
	for _, r := range results {
		switch r.Outcome {
		case OutcomeSuccess:
			succeeded++
		case OutcomePartial:
			partial++
		case OutcomeFailed:
			failed++
		}
	}
	log.Info().
		Int("solicitations", len(links)).
		Int("succeeded", succeeded).
		Int("partial", partial).
		Int("failed", failed).
		Msg("run complete")

	return results, nil
}

// processSolicitation runs the whole pipeline for one detail-page URL. The
// returned record is nil when the solicitation failed before assembly.
func processSolicitation(ctx context.Context, client *fetch.Client, st store.Store, base *url.URL, cfg Config, link string) (Result, *record.Solicitation) {
	logger := log.With().Str("link", link).Logger()
	res := Result{Link: link, Outcome: OutcomeFailed}

	body, _, err := client.Get(ctx, link)
	if err != nil {
		res.Err = fmt.Errorf("fetch detail page: %w", err)
		logger.Error().Err(err).Msg("solicitation failed")
		return res, nil
	}
	doc, err := detail.Parse(bytes.NewReader(body))
	if err != nil {
		res.Err = fmt.Errorf("parse detail page: %w", err)
		logger.Error().Err(err).Msg("solicitation failed")
		return res, nil
	}

	candidates := detail.Attachments(doc, base)
	res.Documents = len(candidates)
	logger.Info().Int("attachments", len(candidates)).Msg("discovered attachment links")

	docs := make([]documentResult, 0, len(candidates))
	for _, c := range candidates {
		docs = append(docs, fetchDocument(ctx, client, c))
	}

	// Aggregation point: failures were collected per document, log them here
	// and keep only normalized texts in discovery order.
	var texts []string
	var docErrs int
	for _, d := range docs {
		switch {
		case d.Err != nil:
			docErrs++
			logger.Warn().Err(d.Err).Str("doc", d.Candidate.Label).Msg("document skipped")
		case !d.HasText:
			logger.Debug().Str("doc", d.Candidate.Label).Str("format", string(d.Format)).Msg("no text extracted")
		default:
			texts = append(texts, normalize.Clean(d.Text))
		}
	}
	res.Extracted = len(texts)

	meta, err := detail.ExtractMetadata(doc)
	if err != nil {
		res.Err = err
		logger.Error().Err(err).Msg("solicitation failed")
		return res, nil
	}

	rec := record.Assemble(meta, texts, link, cfg.StateName)
	res.ID = rec.ID
	logger = logger.With().Str("id", rec.ID).Logger()

	if rec.ID == "" {
		res.Err = fmt.Errorf("solicitation number empty, record has no persistence key")
		logger.Error().Msg("solicitation failed")
		return res, nil
	}

	persistErrs := 0
	if cfg.SaveFiles {
		for _, d := range docs {
			if d.Data == nil {
				continue
			}
			key := store.DocumentKey(cfg.Prefix, cfg.State, rec.ID, d.Candidate.Label)
			if err := st.Put(ctx, key, d.Data); err != nil {
				persistErrs++
				logger.Warn().Err(err).Str("key", key).Msg("attachment not persisted")
			}
		}
	}

	recJSON, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		res.Err = fmt.Errorf("marshal record: %w", err)
		logger.Error().Err(err).Msg("solicitation failed")
		return res, &rec
	}
	if err := st.Put(ctx, store.RecordKey(cfg.Prefix, cfg.State, rec.ID), recJSON); err != nil {
		res.Err = fmt.Errorf("persist record: %w", err)
		logger.Error().Err(err).Msg("solicitation failed")
		return res, &rec
	}

	if docErrs > 0 || persistErrs > 0 {
		res.Outcome = OutcomePartial
	} else {
		res.Outcome = OutcomeSuccess
	}
	logger.Info().
		Str("outcome", string(res.Outcome)).
		Int("documents", res.Documents).
		Int("texts", len(texts)).
		Msg("solicitation processed")
	return res, &rec
}

// fetchDocument probes, downloads, and extracts one attachment. All failures
// land in the result's Err; nothing here aborts the batch.
func fetchDocument(ctx context.Context, client *fetch.Client, c detail.Candidate) documentResult {
	res := documentResult{Candidate: c, Format: classify.FormatUnknown}

	contentType, err := client.Head(ctx, c.URL)
	if err != nil {
		res.Err = fmt.Errorf("probe %s: %w", c.URL, err)
		return res
	}
	res.Format = classify.Classify(contentType)

	body, _, err := client.Get(ctx, c.URL)
	if err != nil {
		res.Err = fmt.Errorf("download %s: %w", c.URL, err)
		return res
	}
	res.Data = body

	if res.Format == classify.FormatUnknown {
		// Recorded with no text; the raw bytes still get persisted.
		return res
	}
	text, err := extract.Text(res.Format, body)
	if err != nil {
		res.Err = fmt.Errorf("extract %s: %w", c.Label, err)
		return res
	}
	res.Text = text
	res.HasText = true
	return res
}

func resolveLinks(ctx context.Context, cfg Config) ([]string, error) {
	if cfg.LinksFile != "" {
		return readLinksFile(cfg.LinksFile)
	}
	if cfg.SearchURL == "" {
		return nil, fmt.Errorf("either a links file or a search URL is required")
	}
	return lister.Links(ctx, lister.Config{SearchURL: cfg.SearchURL})
}

func readLinksFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read links file: %w", err)
	}
	var links []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		links = append(links, line)
	}
	return links, nil
}

func newStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.Storage {
	case "", "fs":
		return store.NewFS(cfg.OutDir), nil
	case "s3":
		return store.NewS3(ctx, store.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
