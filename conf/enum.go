package conf

import (
	airscan "github.com/rsie-dev/sane-airscan"
	"github.com/rsie-dev/sane-airscan/id"
	"gopkg.in/yaml.v3"
)

// The wrapper types below bind the id package's enumerations to YAML:
// each marshals as the external name and unmarshals from it, matched
// case-insensitively through the id reverse accessors. A name the
// reverse accessor does not know fails the decode with the domain's
// sentinel error.

// Protocol wraps id.Proto for YAML use.
type Protocol struct {
	id.Proto
}

// UnmarshalYAML decodes a protocol from its external name.
func (p *Protocol) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, id.ProtoByName, id.ProtoUnknown, &p.Proto,
		"conf.Protocol", "protocol", airscan.ErrUnknownProtocol)
}

// MarshalYAML encodes the protocol as its external name.
func (p Protocol) MarshalYAML() (any, error) {
	return marshalEnum(p.Proto)
}

// FormatOption wraps id.Format for YAML use.
type FormatOption struct {
	id.Format
}

// UnmarshalYAML decodes a format from its MIME type.
func (f *FormatOption) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, id.FormatByName, id.FormatUnknown, &f.Format,
		"conf.FormatOption", "format", airscan.ErrUnknownFormat)
}

// MarshalYAML encodes the format as its MIME type.
func (f FormatOption) MarshalYAML() (any, error) {
	return marshalEnum(f.Format)
}

// SourceOption wraps id.Source for YAML use.
type SourceOption struct {
	id.Source
}

// UnmarshalYAML decodes a source from its SANE option value.
func (s *SourceOption) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, id.SourceByName, id.SourceUnknown, &s.Source,
		"conf.SourceOption", "source", airscan.ErrUnknownSource)
}

// MarshalYAML encodes the source as its SANE option value.
func (s SourceOption) MarshalYAML() (any, error) {
	return marshalEnum(s.Source)
}

// ModeOption wraps id.ColorMode for YAML use.
type ModeOption struct {
	id.ColorMode
}

// UnmarshalYAML decodes a color mode from its SANE scan-mode value.
func (m *ModeOption) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, id.ColorModeByName, id.ColorModeUnknown, &m.ColorMode,
		"conf.ModeOption", "mode", airscan.ErrUnknownColorMode)
}

// MarshalYAML encodes the color mode as its SANE scan-mode value.
func (m ModeOption) MarshalYAML() (any, error) {
	return marshalEnum(m.ColorMode)
}

// decodeEnum decodes a scalar YAML node into an enumeration value via
// the supplied reverse accessor. A node that is not a string fails with
// yaml's own error; a name that resolves to the domain's unknown member
// fails with a configuration DriverError wrapping sentinel, carrying
// the offending name under the field key.
func decodeEnum[T comparable](value *yaml.Node, byName func(string) T, unknown T, out *T, op, field string, sentinel error) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}

	v := byName(name)
	if v == unknown {
		return airscan.NewConfigurationError(op, sentinel).
			WithContext(map[string]any{field: name})
	}

	*out = v
	return nil
}

// namer is satisfied by every id enumeration type.
type namer interface {
	Name() (string, bool)
}

// marshalEnum encodes an enumeration value as its external name.
func marshalEnum(v namer) (any, error) {
	name, ok := v.Name()
	if !ok {
		return nil, airscan.NewInternalError("conf.marshalEnum", airscan.ErrInvalidConfig).
			WithContext(map[string]any{"value": v})
	}
	return name, nil
}
