package analytics

import (
	"sort"
	"strconv"

	"github.com/mhowell/gameflow/internal/boxscore"
)

// Stat column names as they appear in the source header row
const (
	statPoints    = "PTS"
	statGameScore = "GmSc"
	statRebounds  = "TRB"
	statAssists   = "AST"
	statSteals    = "STL"
	statBlocks    = "BLK"
)

const topScorersRank = 5

// RankedPlayer is a PlayerRecord annotated with its numeric sort key
type RankedPlayer struct {
	boxscore.PlayerRecord
	Points float64 `json:"points"`
}

// PlayerOfGame is the fixed projection exposed for the player-of-the-game
// selection. Stat fields keep their verbatim cell text; GameScore is the
// coerced composite metric the selection ranked on.
type PlayerOfGame struct {
	Player    string  `json:"player"`
	Rebounds  string  `json:"rebounds"`
	Assists   string  `json:"assists"`
	Steals    string  `json:"steals"`
	Blocks    string  `json:"blocks"`
	Points    string  `json:"points"`
	GameScore float64 `json:"game_score"`
}

// Combine flattens team records into one sequence, preserving
// team-then-row order.
func Combine(teams ...*boxscore.TeamStats) []boxscore.PlayerRecord {
	var combined []boxscore.PlayerRecord
	for _, team := range teams {
		if team == nil {
			continue
		}
		combined = append(combined, team.Records...)
	}
	return combined
}

// TopScorers ranks records by points, descending. With five or fewer records
// all are returned; otherwise every record scoring at least as much as the
// fifth-ranked one is included, so ties at the cutoff can push the result
// past five.
func TopScorers(records []boxscore.PlayerRecord) []RankedPlayer {
	ranked := make([]RankedPlayer, 0, len(records))
	for _, rec := range records {
		ranked = append(ranked, RankedPlayer{
			PlayerRecord: rec,
			Points:       statNumber(rec, statPoints),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})

	if len(ranked) <= topScorersRank {
		return ranked
	}

	cutoff := ranked[topScorersRank-1].Points
	end := topScorersRank
	for end < len(ranked) && ranked[end].Points >= cutoff {
		end++
	}
	return ranked[:end]
}

// PlayerOfTheGame selects the record with the highest composite game score;
// a parse failure counts as zero and ties resolve to the first record in
// combined order. Returns false when no records exist.
func PlayerOfTheGame(records []boxscore.PlayerRecord) (PlayerOfGame, bool) {
	if len(records) == 0 {
		return PlayerOfGame{}, false
	}

	best := 0
	bestScore := statNumber(records[0], statGameScore)
	for i := 1; i < len(records); i++ {
		if score := statNumber(records[i], statGameScore); score > bestScore {
			best = i
			bestScore = score
		}
	}

	rec := records[best]
	return PlayerOfGame{
		Player:    rec.Player,
		Rebounds:  statText(rec, statRebounds),
		Assists:   statText(rec, statAssists),
		Steals:    statText(rec, statSteals),
		Blocks:    statText(rec, statBlocks),
		Points:    statText(rec, statPoints),
		GameScore: bestScore,
	}, true
}

func statText(rec boxscore.PlayerRecord, col string) string {
	if v := rec.Stats[col]; v != nil {
		return *v
	}
	return ""
}

func statNumber(rec boxscore.PlayerRecord, col string) float64 {
	f, err := strconv.ParseFloat(statText(rec, col), 64)
	if err != nil {
		return 0
	}
	return f
}
