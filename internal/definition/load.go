package definition

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"automata/internal/logging"
)

// Format is a definition file syntax.
type Format string

const (
	FormatText Format = "fa"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks a format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".fa", ".txt":
		return FormatText, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Load reads and validates the definition at path.
func Load(path string) (*Definition, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	def, err := parse(format, filepath.Base(path), data)
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("definition")
	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Str("kind", string(def.Kind)).
		Int("rules", len(def.Rules)).
		Msg("Definition loaded")
	return def, nil
}

// Parse decodes and validates a definition held in memory.
func Parse(format Format, data []byte) (*Definition, error) {
	return parse(format, string(format), data)
}

func parse(format Format, name string, data []byte) (*Definition, error) {
	var (
		def *Definition
		err error
	)
	switch format {
	case FormatText:
		def, err = parseText(name, data)
	case FormatYAML:
		def, err = parseYAML(data)
	case FormatTOML:
		def, err = parseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s definition: %w", format, err)
	}
	if def.Kind == "" {
		def.Kind = KindNFA
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition %s: %w", name, err)
	}
	return def, nil
}

func parseYAML(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

func parseTOML(data []byte) (*Definition, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// Marshal encodes d in any of the supported formats.
func Marshal(format Format, d *Definition) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(d)
	case FormatTOML:
		return toml.Marshal(d)
	case FormatText:
		return marshalText(d), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
