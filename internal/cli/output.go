package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, report *Report, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeText(w, report, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the report as JSON
func writeJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// writeText outputs the report as human-readable text
func writeText(w io.Writer, report *Report, verbose bool) error {
	fmt.Fprintf(w, "Game: %s vs. %s\n", report.Team1, report.Team2)

	if report.LineScore != nil {
		fmt.Fprintln(w, "\nLine Score:")
		fmt.Fprintf(w, "  %s\n", strings.Join(report.LineScore.Columns, "  "))
		for _, row := range report.LineScore.Rows {
			fmt.Fprintf(w, "  %s  %s  %s\n", row.Team, strings.Join(row.PeriodScores, "  "), row.Total)
		}
	} else {
		fmt.Fprintln(w, "\nLine score not found; team labels are defaults.")
	}

	if len(report.TopScorers) > 0 {
		fmt.Fprintln(w, "\nTop Scorers:")
		for i, player := range report.TopScorers {
			fmt.Fprintf(w, "  %d. %s (%s) - %g PTS\n", i+1, player.Player, player.Team, player.Points)
		}
	}

	if report.PlayerOfTheGame != nil {
		p := report.PlayerOfTheGame
		fmt.Fprintln(w, "\nPlayer of the Game:")
		fmt.Fprintf(w, "  %s - GmSc %g (TRB %s, AST %s, STL %s, BLK %s, PTS %s)\n",
			p.Player, p.GameScore, p.Rebounds, p.Assists, p.Steals, p.Blocks, p.Points)
	}

	if len(report.MarginSeries) > 0 {
		fmt.Fprintf(w, "\nPlay-by-Play: %d scoring updates extracted\n", len(report.MarginSeries))
		if verbose {
			for _, point := range report.MarginSeries {
				if point.HasScore {
					fmt.Fprintf(w, "  %4d  %g-%g\n", point.Index, point.Home, point.Away)
				} else {
					fmt.Fprintf(w, "  %4d  n/a\n", point.Index)
				}
			}
		}
	} else {
		fmt.Fprintln(w, "\nPlay-by-play data not available.")
	}

	if report.ChartURL != "" {
		fmt.Fprintf(w, "\nChart: %s\n", report.ChartURL)
		fmt.Fprintf(w, "Embed code:\n%s\n", report.ChartEmbed)
	}

	return nil
}
