// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - TransitionCatalog: maps a committed state transition to the inbox notification and
//     audit entry it must produce
package services
