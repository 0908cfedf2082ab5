// Package order provides the Order aggregate of the ordering backend and the
// state machine governing its fulfilment.
//
// The package includes:
//   - Order: the aggregate root owning its items, total and delivery assignment
//   - Item: an order line copied verbatim from a cart line at checkout
//   - Status: the Pending -> Delivered state machine
//
// Key business rules:
//   - owner, total, creation time and items are fixed at creation
//   - total equals the sum of the item line prices
//   - status only takes the values Pending (0) and Delivered (1); Delivered is terminal
//   - assigning or removing the delivery crew never changes the status
package order
