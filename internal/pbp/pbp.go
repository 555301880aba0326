package pbp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mhowell/gameflow/internal/dom"
	"github.com/mhowell/gameflow/internal/fetch"
	"github.com/mhowell/gameflow/internal/logger"
)

const (
	pbpTableID = "pbp"

	boxScorePathSegment = "/boxscores/"
	pbpPathSegment      = "/boxscores/pbp/"

	// The first two table rows are structural headers, skipped regardless
	// of content. Rows need at least five cells to carry a play.
	structuralHeaderRows = 2
	minPlayCells         = 5

	cacheTTL = 10 * time.Minute
)

var (
	// ErrNotFound reports that no margin series could be extracted.
	ErrNotFound = errors.New("play-by-play not found")

	// ErrTooFewRows and ErrNoEventRows distinguish the two not-found causes
	// for diagnostics; both match ErrNotFound via errors.Is.
	ErrTooFewRows  = fmt.Errorf("%w: table has fewer than 3 rows", ErrNotFound)
	ErrNoEventRows = fmt.Errorf("%w: no rows survived the skip policy", ErrNotFound)
)

// MarginPoint is one entry of the score-margin series. Index is positional
// (the point's rank among emitted points), not a timestamp. HasScore is false
// when the combined score text was absent or malformed; Home and Away are
// then zero.
type MarginPoint struct {
	Index    int     `json:"index"`
	Home     float64 `json:"home"`
	Away     float64 `json:"away"`
	HasScore bool    `json:"has_score"`
}

// Extractor fetches play-by-play pages and extracts margin series
type Extractor struct {
	fetcher *fetch.Fetcher
	cache   *Cache
}

// New creates an Extractor with the default result cache
func New(fetcher *fetch.Fetcher) *Extractor {
	return &Extractor{
		fetcher: fetcher,
		cache:   NewCache(cacheTTL),
	}
}

// DeriveURL maps a box-score URL to its play-by-play equivalent by
// substituting the boxscore path marker.
func DeriveURL(boxScoreURL string) string {
	return strings.Replace(boxScoreURL, boxScorePathSegment, pbpPathSegment, 1)
}

// MarginSeries fetches the play-by-play page derived from boxScoreURL and
// returns its ordered score-margin series. A cached result for the same
// (URL, team-label-pair) is returned as-is while its TTL is live.
func (e *Extractor) MarginSeries(boxScoreURL, team1, team2 string) ([]MarginPoint, error) {
	key := cacheKey(boxScoreURL, team1, team2)
	if points, ok := e.cache.Get(key); ok {
		logger.Debug("margin series served from cache", logger.Fields{"url": boxScoreURL})
		return points, nil
	}

	pbpURL := DeriveURL(boxScoreURL)
	start := time.Now()
	doc, err := e.fetcher.Fetch(pbpURL)
	logger.RecordTiming("fetch.pbp", time.Since(start))
	if err != nil {
		return nil, err
	}

	points, err := extractMarginSeries(doc)
	if err != nil {
		return nil, err
	}

	e.cache.Set(key, points)
	return points, nil
}

func extractMarginSeries(doc *fetch.Document) ([]MarginPoint, error) {
	table := dom.Find(doc.Doc, "table", pbpTableID)
	if table == nil {
		return nil, fmt.Errorf("table %q in %s: %w", pbpTableID, doc.URL, ErrNotFound)
	}

	rows := table.Find("tr")
	if rows.Length() <= structuralHeaderRows {
		return nil, fmt.Errorf("table %q in %s has %d rows: %w", pbpTableID, doc.URL, rows.Length(), ErrTooFewRows)
	}

	var points []MarginPoint
	rows.Slice(structuralHeaderRows, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() < minPlayCells {
			return
		}

		indicatorA := strings.TrimSpace(cells.Eq(2).Text())
		scoreText := strings.TrimSpace(cells.Eq(3).Text())
		indicatorB := strings.TrimSpace(cells.Eq(4).Text())

		// Both indicators empty marks a structural row (quarter break,
		// period header), not a play. Skipped rows consume no index.
		if indicatorA == "" && indicatorB == "" {
			return
		}

		point := MarginPoint{Index: len(points)}
		if home, away, ok := splitScore(scoreText); ok {
			point.Home = home
			point.Away = away
			point.HasScore = true
		}
		points = append(points, point)
	})

	if len(points) == 0 {
		return nil, fmt.Errorf("table %q in %s: %w", pbpTableID, doc.URL, ErrNoEventRows)
	}

	return points, nil
}

// splitScore parses a combined running score like "45-42". Text without
// exactly one separator yields the not-available sentinel; a side that fails
// numeric parsing defaults to 0 without failing the row.
func splitScore(text string) (home, away float64, ok bool) {
	if strings.Count(text, "-") != 1 {
		return 0, 0, false
	}

	parts := strings.SplitN(text, "-", 2)
	home, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		home = 0
	}
	away, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		away = 0
	}
	return home, away, true
}
