package boxscore

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/mhowell/gameflow/internal/dom"
	"github.com/mhowell/gameflow/internal/fetch"
	"github.com/mhowell/gameflow/internal/logger"
)

const (
	// Element ids embed the team label by a fixed naming convention
	containerIDFormat  = "all_box-%s-game-basic"
	statsTableIDFormat = "box-%s-game-basic"

	// The real header row is the one naming the minutes-played column;
	// anything above it is a decorative grouping row.
	markerMinutesPlayed = "MP"
)

// PlayerRecord is one player's row of a team stat table. Stats maps each stat
// column name to its verbatim cell text, or nil when the source row had no
// cell for that column. Every record from one extraction call carries the
// same key set.
type PlayerRecord struct {
	Player string             `json:"player"`
	Team   string             `json:"team"`
	Stats  map[string]*string `json:"stats"`
}

// TeamStats is the extracted per-player table for exactly one team, with the
// stat columns in source order.
type TeamStats struct {
	Team    string         `json:"team"`
	Columns []string       `json:"columns"`
	Records []PlayerRecord `json:"records"`
}

// ExtractTeamStats converts one team's basic box-score table into regular
// records. The container element is located first; if it is absent the table
// lookup never proceeds. Body rows that lead with anything other than a
// non-empty th row-header cell are decorative and skipped. Rows shorter than
// the header are right-padded with nil; longer rows are logged and truncated.
func ExtractTeamStats(doc *fetch.Document, team string) (*TeamStats, error) {
	containerID := fmt.Sprintf(containerIDFormat, team)
	container := dom.Find(doc.Doc, "div", containerID)
	if container == nil {
		return nil, fmt.Errorf("container %q for team %s in %s: %w", containerID, team, doc.URL, ErrNotFound)
	}

	tableID := fmt.Sprintf(statsTableIDFormat, team)
	table := dom.FindIn(container, "table", tableID)
	if table == nil {
		return nil, fmt.Errorf("table %q for team %s in %s: %w", tableID, team, doc.URL, ErrNotFound)
	}

	headers, ok := headerCells(table, func(_ int, cells []string) bool {
		return containsString(cells, markerMinutesPlayed)
	})
	if !ok {
		return nil, fmt.Errorf("header row of table %q in %s: %w", tableID, doc.URL, ErrNotFound)
	}

	ts := &TeamStats{Team: team, Columns: headers}
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		record, ok := parsePlayerRow(row, headers, team)
		if ok {
			ts.Records = append(ts.Records, record)
		}
	})

	return ts, nil
}

func parsePlayerRow(row *goquery.Selection, headers []string, team string) (PlayerRecord, bool) {
	cells := row.Find("th, td")
	if cells.Length() == 0 {
		return PlayerRecord{}, false
	}

	// Player rows lead with a th row-header cell; divider rows use td
	texts := cellTexts(row)
	name := texts[0]
	if name == "" || goquery.NodeName(cells.Eq(0)) != "th" {
		return PlayerRecord{}, false
	}

	if len(texts) > len(headers) {
		logger.Warn("stat row longer than header, truncating", logger.Fields{
			"team":    team,
			"player":  name,
			"cells":   len(texts),
			"columns": len(headers),
		})
		texts = texts[:len(headers)]
	}

	stats := make(map[string]*string, len(headers)-1)
	for i, col := range headers[1:] {
		idx := i + 1
		if idx < len(texts) {
			v := texts[idx]
			stats[col] = &v
		} else {
			// Players who did not play leave trailing cells absent
			stats[col] = nil
		}
	}

	return PlayerRecord{Player: name, Team: team, Stats: stats}, true
}
