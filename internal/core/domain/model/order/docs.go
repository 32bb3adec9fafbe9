// Package order holds the laundry order aggregate and its progress ledger.
//
// The package includes:
//   - Stage: the static ordering table of the workflow plus the Complaint side branch
//   - Ledger: the append-only progress log; the current stage is always its latest event
//   - Item: a weighed line of an order
//   - Order: the aggregate root tying identity, items, fee, payment and progress together
//
// Key business rules:
//   - stages advance strictly forward, one step at a time
//   - Complaint may be entered from ArrivedAtOutlet onwards and resolves back to where it branched
//   - the laundry fee is fixed in the same step that starts washing and never changes afterwards
//   - an order cannot be handed to a driver before it is paid
package order
