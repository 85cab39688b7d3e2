// Package models defines domain entities for the Versus news client.
//
// The central type is [NewsItem], the unit of everything the client moves
// around: aggregation batches, single-URL ingestion results, the cached
// working feed, and the server-side saved list. Items arriving from the
// aggregation job carry only caption text; items returned by the captions
// endpoint additionally carry a database ID and a saved-at timestamp.
//
// Two items are the same logical story iff their headlines are equal. No
// stronger identity exists before an item is persisted, so save and trash
// operate on every entry sharing a headline.
package models
