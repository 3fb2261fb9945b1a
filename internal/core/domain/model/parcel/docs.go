// Package parcel provides domain entities and business logic for parcel
// management in the logistics system. It implements the Parcel aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Parcel: The aggregate root carrying identity, physical dimensions,
//     derived volume and quoted price, and warehouse/shipment assignments
//   - Status: A state machine that enforces valid parcel status transitions
//
// Key business rules:
//   - Weight and dimensions are positive and bounded; volume and price are
//     derived once at construction
//   - Status follows the workflow Pending -> Accepted -> Stored -> Loaded ->
//     Dispatched -> Delivered, with Rejected as the alternative terminal
//     branch out of Pending
//   - Stored and later transitions happen only through shipment events
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
