package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		errMsg string
	}{
		{
			name: "valid config",
			config: &Config{
				LLM: LLMConfig{Endpoint: "http://localhost:8080", APIKey: "test-key", Model: "test-model"},
			},
		},
		{
			name:   "missing endpoint",
			config: &Config{LLM: LLMConfig{APIKey: "test-key", Model: "test-model"}},
			errMsg: "llm.endpoint is required",
		},
		{
			name:   "missing api key",
			config: &Config{LLM: LLMConfig{Endpoint: "http://localhost:8080", Model: "test-model"}},
			errMsg: "llm.api_key is required",
		},
		{
			name:   "missing model",
			config: &Config{LLM: LLMConfig{Endpoint: "http://localhost:8080", APIKey: "test-key"}},
			errMsg: "llm.model is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAgainstEmbeddedSchema(tt.config)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEmbeddedSchemaIsValidJSON(t *testing.T) {
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &schema))
	assert.Equal(t, "#/$defs/Config", schema["$ref"])
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	llmDef, ok := schema.Definitions["LLMConfig"]
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"endpoint", "api_key", "model"}, llmDef.Required)

	cfgDef, ok := schema.Definitions["Config"]
	require.True(t, ok)
	assert.Empty(t, cfgDef.Required)
}
