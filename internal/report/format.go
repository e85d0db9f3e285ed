package report

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

type Format int

const (
	Text Format = iota
	Table
	Yaml
	Unknown
)

var formatNames = [...]string{"text", "table", "yaml", "unknown"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat returns the format with the case-insensitive name s.
func ParseFormat(s string) (Format, error) {
	for i := range Unknown {
		if strings.EqualFold(i.String(), s) {
			return i, nil
		}
	}
	return Unknown, fmt.Errorf("unknown report format '%s'", s)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	var y string
	err := node.Decode(&y)
	if err != nil {
		return err
	}
	return f.Set(y)
}
