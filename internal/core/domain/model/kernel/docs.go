// Package kernel contains shared value objects used by all domain models.
//
// The package currently provides UUID, an immutable identifier value object
// wrapping github.com/google/uuid. Identifiers for orders and measurements
// are minted by the backend and reconstructed here from their string form;
// the zero value is invalid and every UUID must be produced through one of
// the constructor functions.
package kernel
