package boxscore

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNotFound reports structural absence: a table, container, or header row
// that does not exist in the document. Callers treat it as a normal outcome
// and match it with errors.Is.
var ErrNotFound = errors.New("not found")

// headerCells returns the cell texts of the first row in the table's header
// section matching the predicate. The predicate receives the row's position
// and cell texts, so callers can select by position (line score) or by
// content (stat tables with a decorative grouping row on top).
func headerCells(table *goquery.Selection, match func(index int, cells []string) bool) ([]string, bool) {
	var headers []string
	found := false

	table.Find("thead tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := cellTexts(row)
		if match(i, cells) {
			headers = cells
			found = true
			return false
		}
		return true
	})

	return headers, found
}

// cellTexts returns the trimmed text of every th and td cell in a row
func cellTexts(row *goquery.Selection) []string {
	var texts []string
	row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
