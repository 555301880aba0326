// Package dom locates tagged, identified elements in a parsed HTML tree.
//
// basketball-reference serves several of its box-score tables inside HTML
// comment nodes, so a plain selector lookup misses them. The locator searches
// the live tree first and then re-parses each comment's text as an
// independent fragment, making both placements transparent to callers.
package dom
