// Package kernel provides core domain primitives shared by the laundry domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Weight: A positive weight in kilograms backed by an exact decimal
//   - TimeOfDay: A wall-clock time without a date, used by shift windows
//
// These primitives are immutable and validate their invariants on construction.
package kernel
