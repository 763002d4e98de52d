package id

import "fmt"

// Op identifies an operation of the scan job pipeline. Op names exist
// for diagnostics only; there is no reverse lookup.
type Op int

const (
	OpNone Op = iota
	OpPrecheck
	OpScan
	OpLoad
	OpCheck
	OpCleanup
	OpFinish
)

var opNames = []entry[Op]{
	{OpNone, "none"},
	{OpPrecheck, "precheck"},
	{OpScan, "scan"},
	{OpLoad, "load"},
	{OpCheck, "check"},
	{OpCleanup, "cleanup"},
	{OpFinish, "finish"},
}

// Name returns the diagnostic tag of the operation.
// The second return is false for an unmapped operation value.
func (op Op) Name() (string, bool) {
	return lookupName(opNames, op)
}

// String implements fmt.Stringer for logging. Unlike Name, it never
// reports absence; unmapped values format as "unknown (N)".
func (op Op) String() string {
	if name, ok := op.Name(); ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(op))
}
