// Package chart packages a score-margin series for the Datawrapper charting
// service and drives its four-step create/upload/patch/publish sequence.
// Every step must return a success status before the next proceeds; a failed
// step aborts the sequence and can leave an unpublished chart behind, which
// is accepted rather than rolled back.
package chart
