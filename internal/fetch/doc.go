// Package fetch retrieves box-score pages over HTTP and parses them into
// goquery documents. Each fetch is a single attempt: a transport error or a
// non-200 status is a terminal failure for that URL, with no retry.
package fetch
