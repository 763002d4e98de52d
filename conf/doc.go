// Package conf loads and validates the driver configuration.
//
// The configuration is a YAML document naming statically configured
// devices, discovery toggles, and default scan options:
//
//	devices:
//	  - name: "Kyocera ECOSYS M2040dn"
//	    url: "http://192.168.1.102:9095/eSCL"
//	    protocol: escl
//	  - name: "HP LaserJet MFP"
//	    url: "http://192.168.1.103:5358/"
//	    protocol: wsd
//	discovery:
//	  enabled: false
//	options:
//	  format: image/png
//	  source: ADF
//	  mode: Gray
//
// Enumerated fields (protocol, format, source, mode) accept the external
// names defined by the id package, matched case-insensitively. A name
// outside the driver's vocabulary fails the load with a *DriverError
// wrapping the matching sentinel (airscan.ErrUnknownProtocol and
// friends): an unrecognized name in configuration is an error here even
// though it is an ordinary miss at the lookup layer.
package conf
