// Package tui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// Two views over the session controller:
//  1. [FeedView] : the working feed — run/halt the aggregation job, ingest a URL, save or trash items
//  2. [SavedView] : the server-side saved captions — browse and delete
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. All
// remote work runs inside tea.Cmd closures over the controller, so the render
// loop never blocks; standing errors from the controller are drawn inline
// under the list, matching the operation-scoped error policy of the
// controller itself.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package tui
