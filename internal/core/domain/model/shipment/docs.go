// Package shipment provides domain entities and business logic for shipment
// management in the logistics system. It implements the Shipment aggregate
// root with lifecycle management and aggregate totals bookkeeping.
//
// The package includes:
//   - Shipment: The aggregate root binding one driver, one vehicle, and one
//     warehouse to a growing set of parcels with weight/volume totals
//   - Status: A state machine enforcing the strictly linear workflow
//     Pending -> Loading -> InTransit -> Completed
//
// Key business rules:
//   - Totals always equal the sum over attached parcels and never shrink
//   - Parcels can only be attached while the shipment is Pending
//   - Completed is terminal and triggers vehicle capacity release
package shipment
