package id

import (
	"fmt"
	"strings"
)

// JustificationX identifies how a scanner's document feeder justifies
// paper horizontally.
type JustificationX int

const (
	// JustificationXUnknown is the value JustificationXByName returns
	// for a name the driver does not recognize.
	JustificationXUnknown JustificationX = iota - 1

	// JustificationXLeft justifies paper against the left edge.
	JustificationXLeft

	// JustificationXCenter centers the paper.
	JustificationXCenter

	// JustificationXRight justifies paper against the right edge.
	JustificationXRight

	// JustificationXNone marks the justification capability as inactive:
	// the scanner does not report horizontal justification at all. It is
	// a real table member so that option code can round-trip it like any
	// other value.
	JustificationXNone
)

// justificationXNames maps justifications to the values the SANE
// "adf-justification-x" option uses.
var justificationXNames = []entry[JustificationX]{
	{JustificationXLeft, "left"},
	{JustificationXCenter, "center"},
	{JustificationXRight, "right"},
	{JustificationXNone, "none"},
}

// Name returns the SANE option value for the justification; the
// inactive marker JustificationXNone maps to "none". The second return
// is false for an unmapped justification value.
func (j JustificationX) Name() (string, bool) {
	return lookupName(justificationXNames, j)
}

// String implements fmt.Stringer for logging. Unlike Name, it never
// reports absence; unmapped values format as "unknown (N)".
func (j JustificationX) String() string {
	if name, ok := j.Name(); ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(j))
}

// JustificationXByName returns the justification identified by its SANE
// option value, matched case-insensitively; "none" resolves to
// JustificationXNone. For an unknown name it returns
// JustificationXUnknown.
func JustificationXByName(name string) JustificationX {
	return lookupID(justificationXNames, name, strings.EqualFold, JustificationXUnknown)
}
