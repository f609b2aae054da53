package export

import (
	"strings"

	"github.com/arthur-debert/roster/pkg/errors"
)

// Format is an export output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatXML}

func (f Format) String() string { return string(f) }

// Extension returns the conventional file extension, including the dot.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yml"
	}
	return "." + string(f)
}

// ParseFormat parses a format name. The empty string selects json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown export format %q (want json, yaml, toml or xml)", s).
			WithDetail("format", s)
	}
}
