// Package services provides domain services for the laundry workflow: logic that
// spans several aggregates or needs no state of its own.
//
// The package includes:
//   - FeeCalculator: prices weighed items
//   - JobDispatcher: opens and closes the per-stage jobs of an order
//   - AccessGate: role and shift-window authorization of an actor
package services
