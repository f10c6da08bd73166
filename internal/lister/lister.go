// Package lister drives a headless browser through the solicitation search
// UI and collects detail-page links for every open solicitation. The
// ingestion pipeline itself never touches the browser; it consumes the URLs
// this package returns (or a plain links file).
package lister

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog/log"
)

// Config controls the browser session.
type Config struct {
	// SearchURL is the solicitation search page.
	SearchURL string
	// StepTimeout bounds each UI interaction. Zero means 15s.
	StepTimeout time.Duration
}

// Links opens the search page, filters to open solicitations, and walks the
// result pagination collecting every detail link.
func Links(ctx context.Context, cfg Config) ([]string, error) {
	timeout := cfg.StepTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	wsURL, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("lister: launch browser: %w", err)
	}
	browser := rod.New().ControlURL(wsURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("lister: connect browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: cfg.SearchURL})
	if err != nil {
		return nil, fmt.Errorf("lister: open %s: %w", cfg.SearchURL, err)
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("lister: load search page: %w", err)
	}

	// Filter to open solicitations, then search.
	openRadio, err := page.Timeout(timeout).Element(`input[name="searchStatus"][value="O"]`)
	if err != nil {
		return nil, fmt.Errorf("lister: find status radio: %w", err)
	}
	if err := openRadio.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return nil, fmt.Errorf("lister: select open status: %w", err)
	}
	searchBtn, err := page.Timeout(timeout).Element(`[name="btnSearch"]`)
	if err != nil {
		return nil, fmt.Errorf("lister: find search button: %w", err)
	}
	if err := searchBtn.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return nil, fmt.Errorf("lister: submit search: %w", err)
	}

	var links []string
	for pageNum := 1; ; pageNum++ {
		if _, err := page.Timeout(timeout).Element("td.solicitNumber a"); err != nil {
			return nil, fmt.Errorf("lister: results page %d never loaded: %w", pageNum, err)
		}
		anchors, err := page.Elements("td.solicitNumber a")
		if err != nil {
			return nil, fmt.Errorf("lister: collect result links: %w", err)
		}
		for _, a := range anchors {
			href, err := a.Attribute("href")
			if err != nil || href == nil {
				continue
			}
			links = append(links, *href)
		}
		log.Debug().Int("page", pageNum).Int("links", len(links)).Msg("collected result page")

		next, err := page.Timeout(timeout).ElementR("span.pagelinks a", "Next")
		if err != nil {
			break // last page
		}
		if err := next.Click(proto.InputMouseButtonLeft, 1); err != nil {
			return nil, fmt.Errorf("lister: advance to page %d: %w", pageNum+1, err)
		}
		if err := page.Timeout(timeout).WaitLoad(); err != nil {
			return nil, fmt.Errorf("lister: load page %d: %w", pageNum+1, err)
		}
	}

	log.Info().Int("links", len(links)).Msg("scraped solicitation links")
	return links, nil
}
