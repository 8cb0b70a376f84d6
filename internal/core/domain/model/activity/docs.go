// Package activity holds the append-only side-effect records produced by state changes:
// inbox notifications addressed to a user and audit entries attributed to an actor.
// Neither record is mutated after creation.
package activity
