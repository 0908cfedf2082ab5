// Package menu holds the catalog records: menu items and their categories.
// From the ordering core's point of view the catalog is a keyed store; the only
// value read from it during ordering is the current price of an item.
package menu
