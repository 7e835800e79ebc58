package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	rcerrors "github.com/grovetools/restart-controller/errors"
	"github.com/mitchellh/mapstructure"
)

// Load reads the file at path and parses it into entries. Nothing is returned
// unless every element of the document is a valid entry.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, rcerrors.ConfigNotFound(path, err)
		}
		return nil, rcerrors.ConfigUnreadable(path, err)
	}

	entries, err := Parse(data, FormatFromPath(path))
	if err != nil {
		if rcErr, ok := rcerrors.As(err); ok {
			rcErr.WithDetail("path", path)
		}
		return nil, err
	}
	return entries, nil
}

// LoadDefault loads DefaultPath.
func LoadDefault() ([]Entry, error) {
	return Load(DefaultPath)
}

// Parse decodes a configuration document, validates its structure and selects
// the entry variant for every element, preserving document order.
func Parse(data []byte, format Format) ([]Entry, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, rcerrors.ConfigInvalid("malformed document", err)
	}

	validator, err := DefaultValidator()
	if err != nil {
		return nil, rcerrors.Wrap(err, rcerrors.ErrCodeInternal, "failed to build configuration schema")
	}
	if err := validator.Validate(doc); err != nil {
		return nil, rcerrors.ConfigInvalid("document does not match the entry schema", err)
	}

	items, ok := doc.([]interface{})
	if !ok {
		return nil, rcerrors.ConfigInvalid("top level must be an array of entries", nil)
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		entry, err := decodeEntry(item)
		if err != nil {
			return nil, rcerrors.ConfigInvalid(fmt.Sprintf("entry %d", i), err).WithDetail("entry", i)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// decodeEntry selects the variant by key presence: an object with "name" is a
// session entry; an object with "command" and no "name" is a process entry.
func decodeEntry(item interface{}) (Entry, error) {
	obj, ok := item.(map[string]interface{})
	if !ok {
		return Entry{}, fmt.Errorf("expected an object, got %T", item)
	}

	if _, ok := obj["name"]; ok {
		var s SessionEntry
		if err := decodeInto(obj, &s); err != nil {
			return Entry{}, err
		}
		if s.Commands == nil {
			s.Commands = []string{}
		}
		return NewSessionEntry(s), nil
	}

	if _, ok := obj["command"]; ok {
		var p ProcessEntry
		if err := decodeInto(obj, &p); err != nil {
			return Entry{}, err
		}
		return NewProcessEntry(p), nil
	}

	return Entry{}, fmt.Errorf("object has neither \"name\" nor \"command\"")
}

func decodeInto(obj map[string]interface{}, target interface{}) error {
	// Use `json` tags so field names match the configuration file. Unknown keys
	// are ignored.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "json",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	return decoder.Decode(obj)
}
