// Package cli wires the extraction pipeline into the gameflow command: it
// fetches the box-score page, runs the extractors and analytics in sequence,
// optionally publishes the game-flow chart, and renders the report as text
// or JSON.
package cli
