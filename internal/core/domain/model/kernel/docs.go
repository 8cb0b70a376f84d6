// Package kernel provides the shared domain primitives of the prep-center model.
//
// The package includes:
//   - UUID: the identifier value object used by every aggregate and actor reference
//   - Clock: the time source used when stamping transitions
//
// Both are immutable and safe for concurrent use.
package kernel
