package id

import (
	"fmt"
	"strings"
)

// Format identifies the image format a scanner delivers.
type Format int

const (
	// FormatUnknown is the value FormatByName returns for a name the
	// driver does not recognize.
	FormatUnknown Format = iota - 1

	// FormatJPEG is JPEG ("image/jpeg").
	FormatJPEG

	// FormatTIFF is TIFF ("image/tiff").
	FormatTIFF

	// FormatPNG is PNG ("image/png").
	FormatPNG

	// FormatPDF is PDF ("application/pdf").
	FormatPDF

	// FormatBMP is BMP ("application/bmp").
	FormatBMP
)

// formatNames maps formats to the MIME types used during transfer
// negotiation.
var formatNames = []entry[Format]{
	{FormatJPEG, "image/jpeg"},
	{FormatTIFF, "image/tiff"},
	{FormatPNG, "image/png"},
	{FormatPDF, "application/pdf"},
	{FormatBMP, "application/bmp"},
}

// Name returns the MIME type of the format.
// The second return is false for an unmapped format value.
func (f Format) Name() (string, bool) {
	return lookupName(formatNames, f)
}

// ShortName returns the format name with the MIME type prefix removed:
// "image/jpeg" becomes "jpeg", "application/pdf" becomes "pdf". A MIME
// name without a "/" is returned whole. The second return is false for
// an unmapped format value.
//
// The short form is derived from the MIME name, not looked up: there is
// exactly one table per domain, and this accessor only post-processes
// what Name returns.
func (f Format) ShortName() (string, bool) {
	mime, ok := f.Name()
	if !ok {
		return "", false
	}
	return shortNameOf(mime), true
}

// shortNameOf strips the MIME type prefix, if any, from a format name.
func shortNameOf(mime string) string {
	if _, short, found := strings.Cut(mime, "/"); found {
		return short
	}
	return mime
}

// String implements fmt.Stringer for logging. Unlike Name, it never
// reports absence; unmapped values format as "unknown (N)".
func (f Format) String() string {
	if name, ok := f.Name(); ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(f))
}

// FormatByName returns the format identified by its MIME type, matched
// case-insensitively. For an unknown name it returns FormatUnknown.
func FormatByName(name string) Format {
	return lookupID(formatNames, name, strings.EqualFold, FormatUnknown)
}
