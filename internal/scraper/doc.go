// Package scraper provides HTTP fetching and HTML parsing for
// tournament report pages.
//
// The scraper package fetches a public report page, locates the
// tournament heading block (the h3.tournreport element) and each
// section's results table (an h4 header followed by a pre block), and
// runs the parse package over their text content to assemble a full
// report. Fetching retries transient failures with exponential backoff.
package scraper
