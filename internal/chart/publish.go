package chart

import (
	"fmt"
	"os"

	"github.com/mhowell/gameflow/internal/pbp"
)

const (
	publicURLFormat = "https://www.datawrapper.de/_/%s"
	embedURLFormat  = "https://datawrapper.dwcdn.net/%s/1/"
)

// PublishSeries stages the margin series as a temporary CSV and runs the
// four-step create/upload/patch/publish sequence. It returns the id of the
// published chart. A failed step aborts the sequence; the staged file is
// removed either way.
func (c *Client) PublishSeries(series []pbp.MarginPoint, teamA, teamB string) (string, error) {
	var chartID string

	err := WithTempCSV(series, teamA, teamB, func(path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading staged CSV: %w", err)
		}

		id, err := c.CreateChart(Title(teamA, teamB))
		if err != nil {
			return err
		}
		chartID = id

		if err := c.UploadData(id, string(data)); err != nil {
			return err
		}
		if err := c.PatchMetadata(id, teamA, teamB); err != nil {
			return err
		}
		return c.Publish(id)
	})
	if err != nil {
		return "", err
	}

	return chartID, nil
}

// PublicURL returns the public page for a published chart
func PublicURL(chartID string) string {
	return fmt.Sprintf(publicURLFormat, chartID)
}

// EmbedCode returns an iframe snippet for embedding a published chart
func EmbedCode(chartID, title string) string {
	return fmt.Sprintf(
		`<iframe title=%q aria-label="Interactive line chart" id="datawrapper-chart-%s" src=%q scrolling="no" frameborder="0" style="width: 100%%; border: none;" height="500" data-external="1"></iframe>`,
		title, chartID, fmt.Sprintf(embedURLFormat, chartID),
	)
}
