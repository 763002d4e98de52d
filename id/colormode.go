package id

import (
	"fmt"
	"strings"
)

// ColorMode identifies the color mode of a scan.
type ColorMode int

const (
	// ColorModeUnknown is the value ColorModeByName returns for a name
	// the driver does not recognize.
	ColorModeUnknown ColorMode = iota - 1

	// ColorModeBW1 is 1-bit black and white.
	ColorModeBW1

	// ColorModeGrayscale is 8-bit grayscale.
	ColorModeGrayscale

	// ColorModeColor is 24-bit RGB color.
	ColorModeColor
)

// colorModeNames maps color modes to the values the SANE "mode" option
// uses.
var colorModeNames = []entry[ColorMode]{
	{ColorModeBW1, "Halftone"},
	{ColorModeGrayscale, "Gray"},
	{ColorModeColor, "Color"},
}

// Name returns the SANE scan-mode value for the color mode.
// The second return is false for an unmapped color mode value.
func (c ColorMode) Name() (string, bool) {
	return lookupName(colorModeNames, c)
}

// String implements fmt.Stringer for logging. Unlike Name, it never
// reports absence; unmapped values format as "unknown (N)".
func (c ColorMode) String() string {
	if name, ok := c.Name(); ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(c))
}

// ColorModeByName returns the color mode identified by its SANE
// scan-mode value, matched case-insensitively. For an unknown name it
// returns ColorModeUnknown.
func ColorModeByName(name string) ColorMode {
	return lookupID(colorModeNames, name, strings.EqualFold, ColorModeUnknown)
}
