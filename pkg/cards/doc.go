// Package cards defines the Wi-Fi network records that appear on the
// printed sheet and resolves which grid cell each record occupies.
//
// A record either claims explicit (row, column) cells via its coords
// field or, by omitting coords entirely, acts as the single catch-all
// default that fills every cell nobody else claimed. Resolve validates
// the whole input up front and returns all violations together, then
// produces a deterministic row-major list of placements.
package cards
