// Package engine implements the Greed Island game rules: HP and XP
// progression, binder routing for acquired cards, travel and the win/loss
// evaluation.
//
// Every function mutates the PlayerState it is handed. Callers own the
// single mutation gate; nothing here is safe for concurrent use.
package engine
