// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the logistics system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - WarehouseResolver: Selects the nearest warehouse to a pickup point by
//     great-circle distance
//   - ShipmentAllocator: Binds a parcel, a shipment, and a vehicle together,
//     keeping vehicle capacity and the parcel lifecycle consistent
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
