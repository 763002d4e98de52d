package id

import (
	"fmt"
	"strings"
)

// Proto identifies the transport protocol used to talk to a scanner.
type Proto int

const (
	// ProtoUnknown is the value ProtoByName returns for a name the
	// driver does not recognize.
	ProtoUnknown Proto = iota - 1

	// ProtoESCL is the eSCL protocol (Apple AirScan).
	ProtoESCL

	// ProtoWSD is the WSD protocol (Microsoft Web Services for Devices).
	ProtoWSD
)

var protoNames = []entry[Proto]{
	{ProtoESCL, "eSCL"},
	{ProtoWSD, "WSD"},
}

// Name returns the protocol display name ("eSCL" or "WSD").
// The second return is false for an unmapped protocol value.
func (p Proto) Name() (string, bool) {
	return lookupName(protoNames, p)
}

// String implements fmt.Stringer for logging. Unlike Name, it never
// reports absence; unmapped values format as "unknown (N)".
func (p Proto) String() string {
	if name, ok := p.Name(); ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(p))
}

// ProtoByName returns the protocol identified by name, matched
// case-insensitively ("wsd" and "WSD" both resolve to ProtoWSD).
// For an unknown name it returns ProtoUnknown.
func ProtoByName(name string) Proto {
	return lookupID(protoNames, name, strings.EqualFold, ProtoUnknown)
}
