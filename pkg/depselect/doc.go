// Package depselect binds two selection controls so that a change in the
// source control (a warehouse picker) repopulates the dependent control (a
// box picker) from a remote lookup keyed by the source value.
//
// The controller never reaches for a global document: callers inject the two
// controls and a Lookup, which keeps the behaviour testable without a browser.
// Every change moves the dependent control through the states
//
//	AwaitingSource | Loading -> Populated | Empty | Failed
//
// and Render maps each state onto the option list shown to the user. Lookups
// run asynchronously; failures are logged and rendered as a placeholder, they
// never propagate to the caller.
//
// By default only the most recently issued lookup may render its result.
// WithLatestOnly(false) restores last-arrival-wins ordering, in which a slow
// earlier response can overwrite a newer selection.
package depselect
