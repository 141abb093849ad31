package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaDoc is the subset of a generated JSON schema needed for required-field checks
type schemaDoc struct {
	Ref  string               `json:"$ref"`
	Defs map[string]schemaDef `json:"$defs"`
}

type schemaDef struct {
	Properties map[string]struct {
		Ref string `json:"$ref"`
	} `json:"properties"`
	Required []string `json:"required"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Every property listed as required in a section definition must be set.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	// parse schema
	var schema schemaDoc
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]interface{}
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root, ok := schema.Defs[strings.TrimPrefix(schema.Ref, "#/$defs/")]
	if !ok {
		return fmt.Errorf("schema has no root definition %q", schema.Ref)
	}

	sections := make([]string, 0, len(root.Properties))
	for name := range root.Properties {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	for _, section := range sections {
		def, ok := schema.Defs[strings.TrimPrefix(root.Properties[section].Ref, "#/$defs/")]
		if !ok {
			continue
		}
		values, _ := configMap[section].(map[string]interface{})
		for _, field := range def.Required {
			if isEmptyValue(values[field]) {
				return fmt.Errorf("%s.%s is required", section, field)
			}
		}
	}

	return nil
}

func isEmptyValue(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0
	case []interface{}:
		return len(val) == 0
	}
	return false
}

// GenerateSchema generates a JSON schema for the Config struct.
// Only fields tagged with jsonschema "required" are listed as required.
func GenerateSchema() (*jsonschema.Schema, error) {
	r := jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
	return r.Reflect(&Config{}), nil
}
