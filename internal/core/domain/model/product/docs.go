// Package product provides the catalog item entity consumed by the order core.
// The catalog itself is owned by an external collaborator; this package models
// only what checkout needs from it:
//
//   - Status: an availability enumeration deciding whether an item may be ordered
//   - Product: the entity carrying a standard price and an optional discount price
//
// EffectivePrice is the single source of the price charged at checkout time:
// the discount price when one is set, otherwise the standard price. Checkout
// copies that value into an order line snapshot, after which catalog price
// changes no longer affect the order.
package product
