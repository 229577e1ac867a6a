// Package todo holds the authoritative to-do list.
//
// A List owns the ordered tasks together with the current sort direction and
// filter mode. Every mutation that changes stored data (add, remove, toggle,
// commit edit, sort) writes the whole list as one JSON array to a
// store.KeyValue before the change becomes visible, so the persisted snapshot
// and the in-memory list never diverge. Edit-mode toggling and filter changes
// are view state and are not written.
//
// Renderers do not poll: they call Subscribe and re-project the Snapshot they
// are handed after each change.
package todo
