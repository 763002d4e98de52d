// Package devid produces stable device identifiers for network
// scanners.
//
// Scanners discovered over DNS-SD or WSD usually advertise a UUID in
// their metadata, in varying shapes ("urn:uuid:..." URNs, braced forms,
// mixed case). Normalize canonicalizes whatever a device sends. Devices
// that advertise no UUID at all get a deterministic identifier derived
// from their name and endpoint, so the same scanner keeps the same
// identity across rediscovery and driver restarts.
package devid
