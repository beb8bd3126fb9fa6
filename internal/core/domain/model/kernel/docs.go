// Package kernel provides the value objects shared by the logistics domain model.
//
// The package includes:
//   - UUID: identifiers of every aggregate
//   - GeoPoint and DistanceKm: WGS84 coordinates and haversine distance (earth radius 6371 km)
//   - Date, TimeOfDay, TimeWindow: scheduling primitives with minute precision
//   - Address: street text with optional coordinates
//
// All values are immutable; constructors validate their input.
package kernel
