package pbp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/mhowell/gameflow/internal/fetch"
)

func TestDeriveURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			"basic",
			"https://www.basketball-reference.com/boxscores/202406060BOS.html",
			"https://www.basketball-reference.com/boxscores/pbp/202406060BOS.html",
		},
		{
			"no marker unchanged",
			"https://www.basketball-reference.com/teams/BOS/2024.html",
			"https://www.basketball-reference.com/teams/BOS/2024.html",
		},
		{
			"only first occurrence",
			"https://host/boxscores/a/boxscores/b.html",
			"https://host/boxscores/pbp/a/boxscores/b.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveURL(tt.url); got != tt.expected {
				t.Errorf("DeriveURL(%q) = %q, expected %q", tt.url, got, tt.expected)
			}
		})
	}
}

// pbpServer serves the fixture on the derived play-by-play path and counts
// requests so cache behavior can be observed.
func pbpServer(t *testing.T, requests *int) *httptest.Server {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/pbp.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/boxscores/pbp/game.html" {
			http.NotFound(w, r)
			return
		}
		if requests != nil {
			*requests++
		}
		w.Write(data)
	}))
}

func TestMarginSeries(t *testing.T) {
	server := pbpServer(t, nil)
	defer server.Close()

	e := New(fetch.New())
	points, err := e.MarginSeries(server.URL+"/boxscores/game.html", "AAA", "BBB")
	if err != nil {
		t.Fatalf("MarginSeries failed: %v", err)
	}

	// Fixture has 8 rows after the two structural headers; three are
	// non-events (quarter starts, period header) and are skipped.
	if len(points) != 5 {
		t.Fatalf("expected 5 margin points, got %d", len(points))
	}

	// Indices are positional with no gaps
	for i, point := range points {
		if point.Index != i {
			t.Errorf("point %d: expected index %d, got %d", i, i, point.Index)
		}
	}

	first := points[0]
	if !first.HasScore || first.Home != 2 || first.Away != 0 {
		t.Errorf("expected first point 2-0, got %+v", first)
	}

	// "N/A" has no single separator: sentinel pair, row still emitted
	sentinel := points[2]
	if sentinel.HasScore {
		t.Errorf("expected point 2 to carry the not-available sentinel, got %+v", sentinel)
	}
	if sentinel.Home != 0 || sentinel.Away != 0 {
		t.Errorf("expected sentinel scores to be zero, got %+v", sentinel)
	}

	last := points[len(points)-1]
	if !last.HasScore || last.Home != 105 || last.Away != 110 {
		t.Errorf("expected final point 105-110, got %+v", last)
	}
}

func TestMarginSeries_CachedSecondCall(t *testing.T) {
	requests := 0
	server := pbpServer(t, &requests)
	defer server.Close()

	e := New(fetch.New())
	url := server.URL + "/boxscores/game.html"

	firstRun, err := e.MarginSeries(url, "AAA", "BBB")
	if err != nil {
		t.Fatalf("first MarginSeries failed: %v", err)
	}
	secondRun, err := e.MarginSeries(url, "AAA", "BBB")
	if err != nil {
		t.Fatalf("second MarginSeries failed: %v", err)
	}

	if requests != 1 {
		t.Errorf("expected 1 fetch for two calls within the TTL, got %d", requests)
	}
	if len(firstRun) != len(secondRun) {
		t.Errorf("cached result differs: %d vs %d points", len(firstRun), len(secondRun))
	}

	// A different team-label pair is a different key
	if _, err := e.MarginSeries(url, "XXX", "YYY"); err != nil {
		t.Fatalf("third MarginSeries failed: %v", err)
	}
	if requests != 2 {
		t.Errorf("expected a fresh fetch for a new key, got %d requests", requests)
	}
}

func TestMarginSeries_FetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	e := New(fetch.New())
	if _, err := e.MarginSeries(server.URL+"/boxscores/game.html", "AAA", "BBB"); err == nil {
		t.Fatal("expected error when the play-by-play page cannot be fetched")
	}
}

func serveMarkup(markup string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(markup))
	}))
}

func TestMarginSeries_MissingTable(t *testing.T) {
	server := serveMarkup("<html><body><p>nothing</p></body></html>")
	defer server.Close()

	e := New(fetch.New())
	_, err := e.MarginSeries(server.URL+"/boxscores/game.html", "AAA", "BBB")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMarginSeries_TooFewRows(t *testing.T) {
	server := serveMarkup(`<html><body><table id="pbp">
<tr><th colspan="6">1st Q</th></tr>
<tr><th>Time</th><th>AAA</th><th></th><th>Score</th><th></th><th>BBB</th></tr>
</table></body></html>`)
	defer server.Close()

	e := New(fetch.New())
	_, err := e.MarginSeries(server.URL+"/boxscores/game.html", "AAA", "BBB")
	if !errors.Is(err, ErrTooFewRows) {
		t.Errorf("expected ErrTooFewRows, got %v", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrTooFewRows to match ErrNotFound, got %v", err)
	}
}

func TestMarginSeries_NoSurvivingRows(t *testing.T) {
	server := serveMarkup(`<html><body><table id="pbp">
<tr><th colspan="6">1st Q</th></tr>
<tr><th>Time</th><th>AAA</th><th></th><th>Score</th><th></th><th>BBB</th></tr>
<tr><td>12:00</td><td></td><td></td><td>Start of 1st quarter</td><td></td><td></td></tr>
<tr><td>short</td><td>row</td></tr>
</table></body></html>`)
	defer server.Close()

	e := New(fetch.New())
	_, err := e.MarginSeries(server.URL+"/boxscores/game.html", "AAA", "BBB")
	if !errors.Is(err, ErrNoEventRows) {
		t.Errorf("expected ErrNoEventRows, got %v", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNoEventRows to match ErrNotFound, got %v", err)
	}
}

func TestSplitScore(t *testing.T) {
	tests := []struct {
		text string
		home float64
		away float64
		ok   bool
	}{
		{"45-42", 45, 42, true},
		{"2-0", 2, 0, true},
		{"105-110", 105, 110, true},
		{"N/A", 0, 0, false},
		{"", 0, 0, false},
		{"12-34-56", 0, 0, false},
		{"abc-42", 0, 42, true},
		{"59-", 59, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			home, away, ok := splitScore(tt.text)
			if home != tt.home || away != tt.away || ok != tt.ok {
				t.Errorf("splitScore(%q) = (%g, %g, %v), expected (%g, %g, %v)",
					tt.text, home, away, ok, tt.home, tt.away, tt.ok)
			}
		})
	}
}
