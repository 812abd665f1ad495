// Package order provides the domain entities and business logic for
// delivery-order lifecycle management. It implements the Order aggregate
// root and the Status state machine that governs it.
//
// The package includes:
//   - Order: the aggregate root managing identity, ownership, and lifecycle
//   - Status: a state machine with a closed transition table
//
// Key business rules:
//   - Orders are created only in the Pending state with no courier
//   - Status follows the fixed chain Pending -> EnRoutePickup -> PickedUp -> Delivered
//   - The claim (Pending -> EnRoutePickup) sets the courier exactly once;
//     under contention exactly one claimant wins, decided by the store's
//     conditional write
//   - Post-claim transitions require the acting courier to own the order
//   - Delivered is terminal; no further lifecycle mutation is permitted
//
// The in-memory transition methods encode the same rules the persistence
// layer enforces with conditional writes, so a single aggregate behaves
// identically whether mutated in memory or through the store.
package order
