// Package shipment provides the Shipment aggregate: one client's inbound consignment
// and its status pipeline through the prep center.
//
// The package includes:
//   - Shipment: the aggregate root holding identity, ownership, declared contents and status
//   - Item: a line of the consignment (product, SKU, quantity, prep type)
//   - Status: the linear state machine DRAFT -> ... -> DELIVERED
//
// Key business rules:
//   - Operators move a shipment forward exactly one step at a time (Advance); it never skips or rewinds
//   - Administrators may set any status (SetStatus); this is an intentional escape hatch for corrections
//   - ItemCount is the sum of item quantities at creation and is never recomputed
//   - Shipments are never deleted; DELIVERED is terminal for operator scans
package shipment
