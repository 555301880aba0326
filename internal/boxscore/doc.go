// Package boxscore converts the irregular HTML tables of a box-score page
// into regular records: the two-team line score and the per-player stat table
// for each team. Structural absence (a missing table, container, or header
// row) is reported as ErrNotFound, distinct from malformed cell content,
// which is recovered locally.
package boxscore
