package cli

import (
	"time"

	"github.com/mhowell/gameflow/internal/analytics"
	"github.com/mhowell/gameflow/internal/boxscore"
	"github.com/mhowell/gameflow/internal/fetch"
	"github.com/mhowell/gameflow/internal/logger"
	"github.com/mhowell/gameflow/internal/pbp"
)

// Fallback labels when the line score cannot supply team labels
const (
	defaultTeam1 = "Team1"
	defaultTeam2 = "Team2"
)

// Report is the result of one pipeline run over a single box-score URL
type Report struct {
	URL             string                   `json:"url"`
	CheckedAt       time.Time                `json:"checked_at"`
	Team1           string                   `json:"team1"`
	Team2           string                   `json:"team2"`
	LineScore       *boxscore.LineScore      `json:"line_score,omitempty"`
	TeamStats       []*boxscore.TeamStats    `json:"team_stats,omitempty"`
	TopScorers      []analytics.RankedPlayer `json:"top_scorers,omitempty"`
	PlayerOfTheGame *analytics.PlayerOfGame  `json:"player_of_the_game,omitempty"`
	MarginSeries    []pbp.MarginPoint        `json:"margin_series,omitempty"`
	ChartURL        string                   `json:"chart_url,omitempty"`
	ChartEmbed      string                   `json:"chart_embed,omitempty"`
}

// BuildReport runs the extraction pipeline for one box-score URL. Only the
// primary fetch is fatal; each extractor's structural absence is logged and
// the pipeline continues with what it has. Team labels are positional: first
// line-score row is team1, second is team2, with no home/away validation.
func BuildReport(fetcher *fetch.Fetcher, extractor *pbp.Extractor, url string) (*Report, error) {
	start := time.Now()
	doc, err := fetcher.Fetch(url)
	logger.RecordTiming("fetch.boxscore", time.Since(start))
	if err != nil {
		return nil, err
	}

	report := &Report{
		URL:       url,
		CheckedAt: time.Now().UTC(),
		Team1:     defaultTeam1,
		Team2:     defaultTeam2,
	}

	lineScore, err := boxscore.ExtractLineScore(doc)
	if err != nil {
		logger.Warn("line score unavailable, using default team labels", logger.Fields{
			"url":    url,
			"reason": err.Error(),
		})
	} else {
		report.LineScore = lineScore
		report.Team1, report.Team2 = lineScore.TeamLabels()
	}

	for _, team := range []string{report.Team1, report.Team2} {
		stats, err := boxscore.ExtractTeamStats(doc, team)
		if err != nil {
			logger.Warn("team stats unavailable", logger.Fields{
				"url":    url,
				"team":   team,
				"reason": err.Error(),
			})
			continue
		}
		logger.Debug("team stats extracted", logger.Fields{
			"team":    team,
			"records": len(stats.Records),
		})
		report.TeamStats = append(report.TeamStats, stats)
	}

	if combined := analytics.Combine(report.TeamStats...); len(combined) > 0 {
		report.TopScorers = analytics.TopScorers(combined)
		if pog, ok := analytics.PlayerOfTheGame(combined); ok {
			report.PlayerOfTheGame = &pog
		}
	}

	series, err := extractor.MarginSeries(url, report.Team1, report.Team2)
	if err != nil {
		logger.Warn("play-by-play unavailable", logger.Fields{
			"url":    url,
			"reason": err.Error(),
		})
	} else {
		report.MarginSeries = series
	}

	return report, nil
}
