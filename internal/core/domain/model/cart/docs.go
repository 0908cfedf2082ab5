// Package cart implements the per-user shopping cart.
//
// The package includes:
//   - Line: one menu item with its quantity and the unit price captured when it was added
//   - Cart: the aggregate holding every pending line of a single owner
//
// Key business rules:
//   - quantity is at least 1
//   - the unit price is frozen when the item is first added and never recomputed,
//     even if the menu item price changes afterwards
//   - there is one line per distinct menu item; adding the same item again
//     increases the quantity of the existing line
//   - lines are never deleted individually; the cart is drained by checkout or cleared
package cart
