// Package state holds the client-side state containers for Holocron.
//
// # Overview
//
// Two containers back the two views:
//
//   - Collection: the paginated, searchable character listing
//   - Detail: one loaded character plus a local edit buffer
//
// Each container is created by the composition root and injected into the
// UI. There is no package-level store.
//
// # Request / Outcome Flow
//
// Containers never perform I/O. A transition to loading hands back a ticket;
// the owner performs it (FetchList / FetchDetail, usually inside a Bubble Tea
// command) and feeds the outcome to Apply:
//
//	t := coll.RequestPage(2, "sky")       // status = loading
//	out := state.FetchList(ctx, repo, t)  // off the event loop
//	coll.Apply(out)                       // status = idle or error
//
// The transition logic is therefore synchronous and testable without a
// network.
//
// # Sequence Guard
//
// Every ticket carries a per-container sequence number. Apply discards any
// outcome whose number is not the latest issued, so when a user types two
// searches quickly the slower first response cannot overwrite the second.
// Detail.Clear also advances the sequence, which drops a load that is still
// in flight when the detail view is exited.
//
// # Update Semantics
//
// Collection:
//
//	// Success: records and total count replaced together
//	coll.Apply(ListOutcome{Seq: t.Seq, Page: page})
//	→ Records = page.Results
//	→ TotalCount = page.Count
//	→ Status = idle
//
//	// Failure: last good data kept, error recorded
//	coll.Apply(ListOutcome{Seq: t.Seq, Err: err})
//	→ Records, TotalCount = <unchanged>
//	→ Status = error
//	→ ErrorMessage = err.Error()
//
// Setting a new search term always resets the page to 1.
//
// Detail:
//
//	Load(id)      → loading, record and buffer cleared
//	Apply(ok)     → record and buffer populated, not editing
//	Apply(err)    → error, record nil
//	BeginEdit()   → editing (ErrNoRecord without a record)
//	SetField()    → buffer only (ErrNotEditing outside a session)
//	CommitEdit()  → record = buffer, not editing
//	CancelEdit()  → buffer = record, not editing
//	Clear()       → empty
//
// CommitEdit never reaches the network. Reloading the record discards
// committed edits.
//
// # Concurrency Model
//
// Bubble Tea applies outcomes from its single Update goroutine, but the
// containers still guard their fields with sync.RWMutex so the CLI and tests
// can share them freely. Snapshots are deep copies; mutating one never
// affects the container.
package state
