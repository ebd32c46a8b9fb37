// Package jobfile loads label descriptions from YAML or TOML files and turns them
// into epl.Label jobs.
//
// Enumerated attributes accept either the EPL literal or the symbolic name, so
// `font: 3` and `font: SIZE_3` describe the same text. Validation is the one
// implemented by package epl: illegal values fail while the label is built, and
// missing attributes fail when the label is serialized.
package jobfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a description file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Description is the page setup and element list of one label.
type Description struct {
	Width        *int          `yaml:"width" toml:"width"`
	Length       *int          `yaml:"length" toml:"length"`
	Gap          *int          `yaml:"gap" toml:"gap"`
	PrintSpeed   any           `yaml:"print_speed" toml:"print_speed"`
	PrintDensity any           `yaml:"print_density" toml:"print_density"`
	Copies       *int          `yaml:"copies" toml:"copies"`
	Elements     []ElementSpec `yaml:"elements" toml:"elements"`
}

// ElementSpec describes one element. Type selects the element kind and decides
// which of the other attributes apply.
type ElementSpec struct {
	Type string `yaml:"type" toml:"type"`

	Position    []*int  `yaml:"position" toml:"position"`
	EndPosition []*int  `yaml:"end_position" toml:"end_position"`
	Data        *string `yaml:"data" toml:"data"`

	Rotation    any `yaml:"rotation" toml:"rotation"`
	Font        any `yaml:"font" toml:"font"`
	HMultiplier any `yaml:"h_multiplier" toml:"h_multiplier"`
	VMultiplier any `yaml:"v_multiplier" toml:"v_multiplier"`
	PrintMode   any `yaml:"print_mode" toml:"print_mode"`

	BarcodeType    any   `yaml:"barcode_type" toml:"barcode_type"`
	NarrowBarWidth *int  `yaml:"narrow_bar_width" toml:"narrow_bar_width"`
	WideBarWidth   *int  `yaml:"wide_bar_width" toml:"wide_bar_width"`
	Height         *int  `yaml:"height" toml:"height"`
	HumanReadable  *bool `yaml:"human_readable" toml:"human_readable"`

	LineThickness *int `yaml:"line_thickness" toml:"line_thickness"`

	ScaleFactor     *int `yaml:"scale_factor" toml:"scale_factor"`
	CorrectionLevel any  `yaml:"correction_level" toml:"correction_level"`

	NumberOfDataBits any `yaml:"number_of_data_bits" toml:"number_of_data_bits"`
	Language         any `yaml:"language" toml:"language"`
	CountryCode      any `yaml:"country_code" toml:"country_code"`
}

// Load reads and decodes the description file at path.
func Load(path string) (*Description, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("description load failed (%s): %w", path, err)
	}

	desc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("description parse failed (%s): %w", path, err)
	}

	return desc, nil
}

// Decode decodes a description from r. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Description, error) {
	var desc Description

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&desc); err != nil && err != io.EOF {
			return nil, err
		}
	case FormatTOML:
		meta, err := toml.NewDecoder(r).Decode(&desc)
		if err != nil {
			return nil, err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			return nil, fmt.Errorf("%w: %s", ErrUndecodedKeys, strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return &desc, nil
}
