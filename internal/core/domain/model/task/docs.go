// Package task models units of warehouse work and the claim protocol operators use to
// take them.
//
// A task moves PENDING -> IN_PROGRESS -> COMPLETED, and may be CANCELLED from either
// non-terminal state:
//
//	PENDING ──claim──> IN_PROGRESS ──complete──> COMPLETED
//	   │                    │
//	   └──────cancel────────┴──────────────────> CANCELLED
//
// The methods on Task decide whether a transition is legal for the in-memory copy. The
// repository then persists it with a conditional update keyed on the status that was
// read (and, for completion, on the holder), which is what makes concurrent claims safe.
package task
