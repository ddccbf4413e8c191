package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDefinition is returned when a document contains no definition.
var ErrEmptyDefinition = errors.New("empty definition")

// ErrNotText is returned by FromMap when a name or symbol field holds a
// non-string value.
var ErrNotText = errors.New("expected a string")

// Parse decodes a YAML or JSON document into a Definition. Plain scalars keep
// their source text, so `on: 01` is the symbol "01" and `on: true` is "true".
// It does not validate; see Validate.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def *Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDefinition
		}
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	if def == nil {
		return nil, ErrEmptyDefinition
	}
	return def, nil
}

// FromMap maps already decoded data (e.g. a section of a larger document) onto
// a Definition. The original text of a scalar is gone by then, so names and
// symbols must already be strings.
func FromMap(raw map[string]any) (*Definition, error) {
	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &def,
		TagName:     "mapstructure",
		ErrorUnused: true,
		DecodeHook:  requireText,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	return &def, nil
}

func requireText(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String || from.Kind() == reflect.String {
		return data, nil
	}
	return nil, fmt.Errorf("%w, got %T %v", ErrNotText, data, data)
}

// Load reads and parses a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Marshal encodes a definition as YAML.
func Marshal(def *Definition) ([]byte, error) {
	data, err := yaml.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal definition: %w", err)
	}
	return data, nil
}
