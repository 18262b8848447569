// Package store holds the in-memory state of the MainGen API.
//
// Three stores own all data for the lifetime of the process:
//
//   - UserStore: email -> password digest
//   - TokenStore: opaque access token -> email
//   - TreeStore: trees, their persons and relationships
//
// Every store is safe for concurrent use. IDs handed out by TreeStore come
// from three independent counters that only advance when an insert
// succeeds, so a failed call never leaves a gap. Nothing is persisted; a
// restart loses all data.
package store
