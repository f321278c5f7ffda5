// Package cart provides the pre-order basket aggregate.
// A Cart belongs to exactly one user, is created lazily on first access, and
// holds a set of lines keyed by catalog item: adding an item already in the
// cart merges quantities instead of duplicating the line.
//
// The cart is the only mutable half of the checkout pair. A successful
// checkout empties its lines but keeps the cart row for reuse; the immutable
// half (the order) lives in the order package.
package cart
