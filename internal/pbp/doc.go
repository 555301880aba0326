// Package pbp fetches a play-by-play page derived from a box-score URL and
// turns its event table into an ordered score-margin series. Results are held
// in a bounded TTL cache keyed by the URL and team-label pair, purely to
// avoid refetching the same page.
package pbp
