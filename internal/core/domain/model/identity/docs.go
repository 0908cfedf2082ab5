// Package identity models the principals of the ordering backend.
//
// The package includes:
//   - User: a directory entry with its superuser flag and group memberships
//   - Role: the tagged value derived from a user once per request
//   - Principal: the authenticated actor (user ID + role) passed to every use case
//
// Role resolution rules:
//   - superusers are SuperUser regardless of groups
//   - membership in "Manager" gives Manager, even when also in "Delivery crew"
//   - membership in "Delivery crew" gives DeliveryCrew
//   - no group at all gives Customer
//   - any other group set gives Unrecognized, which every gate denies
package identity
