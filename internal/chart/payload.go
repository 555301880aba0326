package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mhowell/gameflow/internal/pbp"
)

// Title derives the deterministic chart title from the two team labels
func Title(teamA, teamB string) string {
	return fmt.Sprintf("%s vs. %s Game Flow", teamA, teamB)
}

// WriteCSV writes the margin series as the chart payload: a positional index
// column with a blank header, then one score column per team. Points without
// an available score serialize as 0 so the series stays continuous.
func WriteCSV(w io.Writer, series []pbp.MarginPoint, teamA, teamB string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"", teamA, teamB}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, point := range series {
		record := []string{
			strconv.Itoa(point.Index),
			formatScore(point.Home),
			formatScore(point.Away),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", point.Index, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WithTempCSV stages the series in a temporary CSV file and hands its path to
// fn. The file is removed when fn returns, on every exit path.
func WithTempCSV(series []pbp.MarginPoint, teamA, teamB string, fn func(path string) error) error {
	f, err := os.CreateTemp("", "gameflow-series-*.csv")
	if err != nil {
		return fmt.Errorf("creating temporary CSV: %w", err)
	}
	defer os.Remove(f.Name())

	if err := WriteCSV(f, series, teamA, teamB); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing temporary CSV: %w", err)
	}

	return fn(f.Name())
}
