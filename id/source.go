package id

import (
	"fmt"
	"strings"
)

// Source identifies the paper source of a scan.
type Source int

const (
	// SourceUnknown is the value SourceByName returns for a name the
	// driver does not recognize.
	SourceUnknown Source = iota - 1

	// SourcePlaten is the flatbed glass.
	SourcePlaten

	// SourceADFSimplex is the automatic document feeder, front side only.
	SourceADFSimplex

	// SourceADFDuplex is the automatic document feeder, both sides.
	SourceADFDuplex
)

// sourceNames maps sources to the values the SANE "source" option uses.
var sourceNames = []entry[Source]{
	{SourcePlaten, "Flatbed"},
	{SourceADFSimplex, "ADF"},
	{SourceADFDuplex, "ADF Duplex"},
}

// Name returns the SANE option value for the source.
// The second return is false for an unmapped source value.
func (s Source) Name() (string, bool) {
	return lookupName(sourceNames, s)
}

// String implements fmt.Stringer for logging. Unlike Name, it never
// reports absence; unmapped values format as "unknown (N)".
func (s Source) String() string {
	if name, ok := s.Name(); ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(s))
}

// SourceByName returns the source identified by its SANE option value,
// matched case-insensitively. For an unknown name it returns
// SourceUnknown.
func SourceByName(name string) Source {
	return lookupID(sourceNames, name, strings.EqualFold, SourceUnknown)
}
