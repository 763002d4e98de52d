package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	airscan "github.com/rsie-dev/sane-airscan"
	"github.com/rsie-dev/sane-airscan/id"
)

// Config represents the driver configuration file.
type Config struct {
	// Devices are statically configured scanners, used in addition to
	// (or, with discovery disabled, instead of) discovered ones.
	Devices []Device `yaml:"devices,omitempty"`

	// Discovery controls automatic device discovery.
	Discovery Discovery `yaml:"discovery,omitempty"`

	// Options are the driver-wide default scan options.
	Options Options `yaml:"options,omitempty"`
}

// Device is one statically configured scanner.
type Device struct {
	// Name is the device name presented to SANE frontends.
	Name string `yaml:"name"`

	// URL is the device endpoint (eSCL base URL or WSD service URL).
	URL string `yaml:"url"`

	// Protocol selects the transport protocol by its external name
	// ("eSCL" or "WSD", any case). Omitted, it defaults to eSCL.
	Protocol Protocol `yaml:"protocol,omitempty"`
}

// Discovery controls automatic device discovery.
type Discovery struct {
	// Enabled toggles discovery. Unset means enabled.
	Enabled *bool `yaml:"enabled,omitempty"`
}

// IsEnabled reports whether discovery is enabled, defaulting to true
// when the field is not set.
func (d Discovery) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// Options are driver-wide default scan options. Every field is optional;
// the Get accessors supply driver defaults for unset fields.
type Options struct {
	// Format is the preferred image format, by MIME type.
	Format *FormatOption `yaml:"format,omitempty"`

	// Source is the default paper source, by SANE option value.
	Source *SourceOption `yaml:"source,omitempty"`

	// Mode is the default color mode, by SANE scan-mode value.
	Mode *ModeOption `yaml:"mode,omitempty"`
}

// GetFormat returns the configured format, or JPEG when unset.
func (o Options) GetFormat() id.Format {
	if o.Format == nil {
		return id.FormatJPEG
	}
	return o.Format.Format
}

// GetSource returns the configured source, or the flatbed when unset.
func (o Options) GetSource() id.Source {
	if o.Source == nil {
		return id.SourcePlaten
	}
	return o.Source.Source
}

// GetMode returns the configured color mode, or color when unset.
func (o Options) GetMode() id.ColorMode {
	if o.Mode == nil {
		return id.ColorModeColor
	}
	return o.Mode.ColorMode
}

// Load reads, parses, and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// An absent file is a different condition than a broken one;
		// callers probing optional config paths check for it.
		if errors.Is(err, fs.ErrNotExist) {
			return nil, airscan.NewNotFoundError("conf.Load", err)
		}
		return nil, airscan.NewConfigurationError("conf.Load", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse parses and validates configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		// Enum decode errors surface as the DriverError the wrapper
		// type produced; keep it intact so errors.Is still matches
		// the domain sentinel.
		var derr *airscan.DriverError
		if errors.As(err, &derr) {
			return nil, derr
		}
		return nil, airscan.NewConfigurationError("conf.Parse",
			fmt.Errorf("%w: %v", airscan.ErrInvalidConfig, err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for internal consistency: every
// device needs a name and a well-formed HTTP endpoint, and device names
// must be unique.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Devices))

	for i := range c.Devices {
		dev := &c.Devices[i]
		if err := dev.Validate(); err != nil {
			return err
		}
		if seen[dev.Name] {
			return airscan.NewValidationError("conf.Validate",
				fmt.Errorf("%w: duplicate device name %q", airscan.ErrInvalidConfig, dev.Name))
		}
		seen[dev.Name] = true
	}

	return nil
}

// Validate checks a single device entry.
func (d *Device) Validate() error {
	if d.Name == "" {
		return airscan.NewValidationError("conf.Device",
			fmt.Errorf("%w: device name is required", airscan.ErrInvalidConfig))
	}

	if d.URL == "" {
		return airscan.NewValidationError("conf.Device",
			fmt.Errorf("%w: device %q has no URL", airscan.ErrInvalidConfig, d.Name))
	}

	u, err := url.Parse(d.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return airscan.NewValidationError("conf.Device",
			fmt.Errorf("%w: device %q has invalid URL %q", airscan.ErrInvalidConfig, d.Name, d.URL))
	}

	return nil
}

// FindDevice returns the statically configured device with the given
// name. It returns a KindNotFound error wrapping ErrDeviceNotFound when
// no device matches.
func (c *Config) FindDevice(name string) (*Device, error) {
	for i := range c.Devices {
		if c.Devices[i].Name == name {
			return &c.Devices[i], nil
		}
	}

	return nil, airscan.NewNotFoundError("conf.FindDevice", airscan.ErrDeviceNotFound).
		WithContext(map[string]any{"device": name})
}
