package boxscore

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/mhowell/gameflow/internal/dom"
	"github.com/mhowell/gameflow/internal/fetch"
)

const (
	lineScoreTableID = "line_score"
	teamColumnName   = "Team"
	nbsp             = "\u00a0"
)

// LineScoreRow is one team's row of the line score: its label, the score for
// each period, and the game total. Cell text is kept verbatim.
type LineScoreRow struct {
	Team         string   `json:"team"`
	PeriodScores []string `json:"period_scores"`
	Total        string   `json:"total"`
}

// LineScore is the per-period score summary for both teams. Row order follows
// the source table; it is the only ordering guarantee (no home/away tagging).
type LineScore struct {
	Columns []string       `json:"columns"`
	Rows    []LineScoreRow `json:"rows"`
}

// TeamLabels returns the labels of the first and second row. Downstream
// extractors treat these as team1 and team2 positionally.
func (ls *LineScore) TeamLabels() (string, string) {
	return ls.Rows[0].Team, ls.Rows[1].Team
}

// ExtractLineScore locates the line-score table and converts it into ordered
// team rows. The first header row only groups columns and is discarded; the
// second provides column names, with a blank or non-breaking-space cell
// renamed to "Team". Returns ErrNotFound when the table is absent, the header
// row is missing, or fewer than two body rows exist.
func ExtractLineScore(doc *fetch.Document) (*LineScore, error) {
	table := dom.Find(doc.Doc, "table", lineScoreTableID)
	if table == nil {
		return nil, fmt.Errorf("table %q in %s: %w", lineScoreTableID, doc.URL, ErrNotFound)
	}

	headers, ok := headerCells(table, func(index int, _ []string) bool {
		return index == 1
	})
	if !ok || len(headers) == 0 {
		return nil, fmt.Errorf("header row of table %q in %s: %w", lineScoreTableID, doc.URL, ErrNotFound)
	}

	for i, h := range headers {
		if h == "" || h == nbsp {
			headers[i] = teamColumnName
		}
	}

	ls := &LineScore{Columns: headers}
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := cellTexts(row)
		if len(cells) < 2 {
			return
		}
		ls.Rows = append(ls.Rows, LineScoreRow{
			Team:         cells[0],
			PeriodScores: cells[1 : len(cells)-1],
			Total:        cells[len(cells)-1],
		})
	})

	// A line score names both teams or it names nothing
	if len(ls.Rows) < 2 {
		return nil, fmt.Errorf("body rows of table %q in %s: %w", lineScoreTableID, doc.URL, ErrNotFound)
	}

	return ls, nil
}
