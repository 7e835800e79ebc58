package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a configuration document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the document format from the file extension.
// Anything that is not YAML or TOML is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// tomlDocument holds the entry list; TOML has no top-level arrays, so the
// list lives under repeated [[entry]] tables.
type tomlDocument struct {
	Entry []map[string]interface{} `toml:"entry"`
}

// decodeDocument parses data into plain JSON values (maps, slices, strings,
// bools, json.Number) regardless of the source format.
func decodeDocument(data []byte, format Format) (interface{}, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)

	case FormatYAML:
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		return normalize(doc)

	case FormatTOML:
		var doc tomlDocument
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if doc.Entry == nil {
			doc.Entry = []map[string]interface{}{}
		}
		return normalize(doc.Entry)

	default:
		return nil, fmt.Errorf("unsupported configuration format: %s", format)
	}
}

func decodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	// A second value after the document is malformed input, not a stream.
	var extra interface{}
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("failed to parse JSON: unexpected data after top-level value")
	}
	return doc, nil
}

// normalize round-trips v through JSON so YAML and TOML documents reach the
// schema validator with the same value types as a JSON document.
func normalize(v interface{}) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("document cannot be represented as JSON: %w", err)
	}
	return decodeJSON(data)
}
