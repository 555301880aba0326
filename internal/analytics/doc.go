// Package analytics derives rankings from combined team records: the
// tie-inclusive top-scorers list and the player-of-the-game selection.
package analytics
