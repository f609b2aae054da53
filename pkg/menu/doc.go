// Package menu runs the interactive numbered-menu session.
//
// A Session reads one line per prompt from its input and writes prompts,
// results and record cards to its output. It owns the working DataStore and
// swaps it only when a load succeeds. Saving is explicit (option 7).
package menu
