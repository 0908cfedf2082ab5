// Package services provides domain services that span several aggregates of
// the ordering backend.
//
// The package includes:
//   - AccessGate: the declarative role × action permission table with record
//     scope and field-level enforcement
//   - OrderPlacer: turns a cart snapshot into a Pending order
//   - CrewAssigneeValidator: checks that a delivery crew assignee is eligible
package services
