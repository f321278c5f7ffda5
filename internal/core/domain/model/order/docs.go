// Package order provides domain entities and business logic for the immutable
// half of the checkout pair: the order created from a cart. It implements the
// Order aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root holding the financial snapshot taken at checkout
//   - Line: One (item, quantity, unit price) entry, its price frozen at creation
//   - Status: A state machine that enforces valid order status transitions
//   - HumanID: The day-scoped sequential display identifier, e.g. "20250731-000001"
//
// Key business rules:
//   - An order always contains at least one line
//   - The total price equals the sum of line snapshots, computed exactly once
//     at creation; later catalog price changes never touch it
//   - Status follows New -> Pending -> Completed, with Cancelled reachable
//     from New and Pending; Completed and Cancelled are terminal
//   - Confirmation (New -> Pending) is reserved for the order's owner
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
