// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identifier of users, menu items, categories, cart lines, orders and order items
//   - Money: a non-negative fixed-point amount with two decimal places
//
// Both types are immutable. Their zero values are invalid and fail Validate,
// so they must be built through the constructors.
package kernel
