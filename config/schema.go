package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SchemaVersion is the JSON Schema dialect of the generated schema.
const SchemaVersion = "https://json-schema.org/draft/2020-12/schema"

// EntryListSchema reflects the entry types into the schema of a whole
// configuration document: an array whose items are exactly one of the
// session or process shapes.
func EntryListSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		// Extra keys are tolerated in both shapes.
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		DoNotReference:            true,
		Anonymous:                 true,
		FieldNameTag:              "json",
	}

	session := r.Reflect(&SessionEntry{})
	session.Version = ""
	session.Title = "Session entry"

	process := r.Reflect(&ProcessEntry{})
	process.Version = ""
	process.Title = "Process entry"
	// A process entry never carries a session name, so the two shapes cannot overlap.
	process.Not = &jsonschema.Schema{Required: []string{"name"}}

	return &jsonschema.Schema{
		Version:     SchemaVersion,
		Title:       "restart-controller configuration",
		Description: "Ordered list of tmux sessions to drive and processes to spawn.",
		Type:        "array",
		Items: &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{session, process},
		},
	}
}

// GenerateSchema returns the indented JSON form of EntryListSchema.
func GenerateSchema() ([]byte, error) {
	return json.MarshalIndent(EntryListSchema(), "", "  ")
}
