package parse

import (
	"reflect"
	"testing"

	"github.com/nwchess/report-scraper/internal/report"
)

func TestHeading(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  report.TournamentInfo
	}{
		{
			name:  "date and address in first line",
			input: "Spring Open Jun 14, 2025 123 Main St",
			want: report.TournamentInfo{
				Name:    "Spring Open",
				Date:    "Jun 14, 2025",
				Address: "123 Main St",
			},
		},
		{
			name:  "date on second line with trailing address",
			input: "Spring Open\nJun 14, 2025 123 Main St",
			want: report.TournamentInfo{
				Name:    "Spring Open",
				Date:    "Jun 14, 2025",
				Address: "123 Main St",
			},
		},
		{
			name:  "address on its own line",
			input: "Winter Classic\nDec 2, 2024\n55 Pine Ave, Portland\nTD: Chen",
			want: report.TournamentInfo{
				Name:    "Winter Classic",
				Date:    "Dec 2, 2024",
				Address: "55 Pine Ave, Portland",
				TD:      "Chen",
			},
		},
		{
			name:  "name only",
			input: "Club Championship",
			want: report.TournamentInfo{
				Name: "Club Championship",
			},
		},
		{
			name:  "TD without colon",
			input: "City Open\nJan 5, 2025\nTD Rodriguez",
			want: report.TournamentInfo{
				Name: "City Open",
				Date: "Jan 5, 2025",
				// The TD line doubles as the address fallback because
				// it lacks the "TD:" marker
				Address: "TD Rodriguez",
				TD:      "Rodriguez",
			},
		},
		{
			name:  "multi-word director keeps first word only",
			input: "Autumn Swiss\nOct 12, 2025\nTD: Mary Johnson",
			want: report.TournamentInfo{
				Name: "Autumn Swiss",
				Date: "Oct 12, 2025",
				TD:   "Mary",
			},
		},
		{
			name:  "date in first line with nothing after it",
			input: "Summer Blitz Jul 4, 2025\n900 River Rd",
			want: report.TournamentInfo{
				Name:    "Summer Blitz",
				Date:    "Jul 4, 2025",
				Address: "900 River Rd",
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  report.TournamentInfo{},
		},
		{
			name:  "whitespace only",
			input: "  \n\t\n  ",
			want:  report.TournamentInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heading(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Heading(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHeadingIdempotent(t *testing.T) {
	input := "Spring Open Jun 14, 2025 123 Main St\nTD: Murphy"

	first := Heading(input)
	second := Heading(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parses differ: %+v vs %+v", first, second)
	}
}

func TestHeadingDatePriorityOverAddress(t *testing.T) {
	// The date line must supply the date even when an earlier line
	// would qualify as an address
	input := "Fall Quads\nSomewhere Community Center\nNov 9, 2025"

	got := Heading(input)

	if got.Date != "Nov 9, 2025" {
		t.Errorf("expected date 'Nov 9, 2025', got %q", got.Date)
	}
	if got.Address != "Somewhere Community Center" {
		t.Errorf("expected address 'Somewhere Community Center', got %q", got.Address)
	}
	if got.Name != "Fall Quads" {
		t.Errorf("expected name 'Fall Quads', got %q", got.Name)
	}
}
