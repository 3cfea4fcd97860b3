package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/nwchess/report-scraper/internal/parse"
	"github.com/nwchess/report-scraper/internal/report"
)

const (
	UserAgent  = "report-scraper/1.0 (github.com/nwchess/report-scraper)"
	Timeout    = 30 * time.Second
	maxRetries = 3
)

// Scraper fetches tournament report pages and parses them into reports
type Scraper struct {
	client *http.Client
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// FetchReport fetches the report page at url and parses it.
// Transient failures (network errors, 5xx responses) are retried with
// exponential backoff; 4xx responses fail immediately.
func (s *Scraper) FetchReport(url string) (*report.Report, error) {
	var body []byte

	fetch := func() error {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
	if err := backoff.Retry(fetch, policy); err != nil {
		return nil, err
	}

	return s.parseReport(strings.NewReader(string(body)), url)
}

// parseReport extracts a report from page HTML
func (s *Scraper) parseReport(r io.Reader, sourceURL string) (*report.Report, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	rpt := &report.Report{
		URL:      sourceURL,
		Sections: []report.Section{},
	}

	// The tournament heading is the single h3 with class tournreport
	if heading := doc.Find("h3.tournreport").First(); heading.Length() > 0 {
		rpt.Info = parse.Heading(heading.Text())
	}

	// Each section is an h4 header followed by a pre block holding the
	// results table; headers without a following pre are skipped
	doc.Find("h4").Each(func(i int, sel *goquery.Selection) {
		pre := sel.NextAllFiltered("pre").First()
		if pre.Length() == 0 {
			return
		}
		rpt.Sections = append(rpt.Sections, report.Section{
			Name:    strings.TrimSpace(sel.Text()),
			Results: parse.SectionTable(pre.Text()),
		})
	})

	return rpt, nil
}
