package scraper

import (
	"os"
	"strings"
	"testing"
)

func TestParseReport(t *testing.T) {
	// Load test fixture
	data, err := os.ReadFile("../../testdata/fixtures/sample_report.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	s := New()
	rpt, err := s.parseReport(strings.NewReader(string(data)), "https://test.example.com")
	if err != nil {
		t.Fatalf("parseReport failed: %v", err)
	}

	if rpt.URL != "https://test.example.com" {
		t.Errorf("expected URL 'https://test.example.com', got %q", rpt.URL)
	}

	// Heading block
	if rpt.Info.Name != "Hot Summer Chess IV" {
		t.Errorf("expected tournament 'Hot Summer Chess IV', got %q", rpt.Info.Name)
	}
	if rpt.Info.Date != "Jun 14, 2025" {
		t.Errorf("expected date 'Jun 14, 2025', got %q", rpt.Info.Date)
	}
	if rpt.Info.Address != "1200 NE 95th St, Seattle" {
		t.Errorf("expected address '1200 NE 95th St, Seattle', got %q", rpt.Info.Address)
	}
	if rpt.Info.TD != "Murphy" {
		t.Errorf("expected TD 'Murphy', got %q", rpt.Info.TD)
	}

	// Sections: the third h4 has no results block and is skipped
	if len(rpt.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(rpt.Sections))
	}

	open := rpt.Sections[0]
	if open.Name != "Open Section" {
		t.Errorf("expected section 'Open Section', got %q", open.Name)
	}
	// Row 5 has no valid external ID and is dropped
	if len(open.Results) != 4 {
		t.Fatalf("expected 4 results in Open Section, got %d", len(open.Results))
	}

	first := open.Results[0]
	if first.LastName != "Smith" || first.FirstName != "John Q" {
		t.Errorf("expected Smith, John Q; got %q, %q", first.LastName, first.FirstName)
	}
	if first.ExternalID != "SHMJ995H" {
		t.Errorf("expected external ID SHMJ995H, got %q", first.ExternalID)
	}
	if len(first.Rounds) != 4 {
		t.Errorf("expected 4 rounds for first player, got %d", len(first.Rounds))
	}

	reserve := rpt.Sections[1]
	if reserve.Name != "Reserve Section" {
		t.Errorf("expected section 'Reserve Section', got %q", reserve.Name)
	}
	// The truncated second row is dropped
	if len(reserve.Results) != 1 {
		t.Fatalf("expected 1 result in Reserve Section, got %d", len(reserve.Results))
	}
	if reserve.Results[0].FirstName != "Sean Patrick" {
		t.Errorf("expected first name 'Sean Patrick', got %q", reserve.Results[0].FirstName)
	}
}

func TestParseReportNoHeading(t *testing.T) {
	html := `<html><body>
		<h4>Lonely Section</h4>
		<pre> no. name id start end rd1 tot
1 Doe, Jane Marie Anne ABCD1234 1200 1250/3 W1 1.0
</pre>
	</body></html>`

	s := New()
	rpt, err := s.parseReport(strings.NewReader(html), "https://test.example.com")
	if err != nil {
		t.Fatalf("parseReport failed: %v", err)
	}

	if rpt.Info.Name != "" {
		t.Errorf("expected empty tournament name, got %q", rpt.Info.Name)
	}
	if len(rpt.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(rpt.Sections))
	}
	if len(rpt.Sections[0].Results) != 1 {
		t.Errorf("expected 1 result, got %d", len(rpt.Sections[0].Results))
	}
}

func TestParseReportNoSections(t *testing.T) {
	html := `<html><body>
		<h3 class="tournreport">Quiet Open Mar 1, 2025</h3>
	</body></html>`

	s := New()
	rpt, err := s.parseReport(strings.NewReader(html), "https://test.example.com")
	if err != nil {
		t.Fatalf("parseReport failed: %v", err)
	}

	if rpt.Info.Name != "Quiet Open" {
		t.Errorf("expected name 'Quiet Open', got %q", rpt.Info.Name)
	}
	if len(rpt.Sections) != 0 {
		t.Errorf("expected no sections, got %d", len(rpt.Sections))
	}
	if rpt.Sections == nil {
		t.Error("expected empty section slice, got nil")
	}
}
