// Package id translates between the driver's internal enumeration values
// and their external string representations.
//
// Every protocol-facing vocabulary the driver deals with is a small closed
// enumeration: the transport protocol, the paper source, the color mode,
// the image format, the horizontal justification reported by an ADF, and
// the internal pipeline operation. Each of these gets an integer-backed
// type here together with a pair of accessors:
//
//	name, ok := id.FormatPDF.Name()   // "application/pdf", true
//	format := id.FormatByName("PDF")  // id.FormatUnknown (not a MIME name)
//	format = id.FormatByName("application/pdf")
//
// Forward lookup (value to name) reports absence through its second return
// value; reverse lookup (name to value) is case-insensitive and reports
// absence through the domain's Unknown member. Neither direction ever
// fails with an error: an unrecognized name is an ordinary outcome that
// option-handling code upstream turns into a configuration problem if it
// needs to.
//
// All tables are fixed at compile time and never mutated, so every
// function in this package is safe for concurrent use without locking.
package id
