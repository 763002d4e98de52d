// Package airscan provides the core library of a SANE-style driver for
// network scanners speaking the eSCL (Apple AirScan) and WSD (Microsoft
// Web Services for Devices) protocols.
//
// The library is organized around a few small packages:
//
//   - id: translation between the driver's internal enumeration values
//     (protocol, paper source, color mode, image format, horizontal
//     justification, pipeline operation) and the string vocabularies used
//     by the SANE option interface, MIME negotiation, and diagnostics
//   - conf: YAML driver configuration (statically configured devices,
//     discovery toggles, default scan options)
//   - devid: stable device identifiers for discovered and configured
//     scanners
//
// The root package defines the structured error type shared by the
// packages above. Device discovery, network transport, and image decoding
// are intentionally outside this library; callers plug it into their own
// I/O layers.
//
// # Error Handling
//
// Operations that can fail return a *DriverError wrapping one of the
// sentinel errors, so callers can classify failures with errors.Is:
//
//	cfg, err := conf.Load("/etc/sane.d/airscan.yaml")
//	if errors.Is(err, airscan.ErrUnknownProtocol) {
//	    // configuration names a protocol this driver does not speak
//	}
//
// Lookup misses in the id package are ordinary return values, not errors:
// an unknown name only becomes an error once configuration or negotiation
// code decides it cannot proceed without a real value.
package airscan
