package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytgebes/biospace/pkg/content"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Dataset    DatasetConfig    `yaml:"dataset" json:"dataset" jsonschema:"description=Publications dataset"`
	Search     SearchConfig     `yaml:"search" json:"search" jsonschema:"description=Search settings"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Document fetch and text extraction"`
	Cache      CacheConfig      `yaml:"cache" json:"cache" jsonschema:"description=Fetched document cache"`
	LLM        LLMConfig        `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for summaries and chat and translation"`
	Session    SessionConfig    `yaml:"session" json:"session" jsonschema:"description=Per-user session state"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=90s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for external links"`
}

// DatasetConfig points to the publications CSV
type DatasetConfig struct {
	Path            string   `yaml:"path" json:"path" jsonschema:"default=SB_publication_PMC.csv,description=CSV file with Title and Link columns"`
	RequiredColumns []string `yaml:"required_columns" json:"required_columns" jsonschema:"description=Extra columns that must be present besides Title and Link"`
}

// SearchConfig holds search settings
type SearchConfig struct {
	Limit int `yaml:"limit" json:"limit" jsonschema:"default=0,minimum=0,description=Maximum results shown per query (0 for unbounded)"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=20s,description=Fetch timeout per document"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 (compatible; BioSpace/1.0),description=User agent for HTTP requests"`
	MaxChars     int           `yaml:"max_chars" json:"max_chars" jsonschema:"default=20000,minimum=1,description=Extracted text is truncated to this many characters"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes" jsonschema:"default=20971520,description=Maximum response body size read"`
	Mode         string        `yaml:"mode" json:"mode" jsonschema:"default=paragraphs,enum=paragraphs,enum=trafilatura,description=HTML extraction mode"`
}

// CacheConfig holds fetch cache settings
type CacheConfig struct {
	MaxKeys int           `yaml:"max_keys" json:"max_keys" jsonschema:"default=256,minimum=1,description=Maximum cached URLs before least recently used are evicted"`
	TTL     time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=0,description=Cache entry lifetime (0 keeps entries until evicted)"`
}

// LLMConfig holds LLM configuration
type LLMConfig struct {
	Endpoint          string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey            string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=API key (can use environment variable)"`
	Model             string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gemini-2.5-flash or gpt-4o-mini)"`
	Temperature       float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens         int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2048,description=Maximum tokens in response"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	SystemPrompt      string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for chat answers (optional)"`
	SummaryInputChars int           `yaml:"summary_input_chars" json:"summary_input_chars" jsonschema:"default=6000,minimum=1,description=Document text sent to the model is cut to this many characters"`
	ChatContextSize   int           `yaml:"chat_context_size" json:"chat_context_size" jsonschema:"default=5,minimum=1,description=Matching publications included as chat context"`
	MaxConcurrent     int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=3,minimum=1,description=Maximum concurrent summaries for uploaded files"`
}

// SessionConfig holds session store settings
type SessionConfig struct {
	DSN             string        `yaml:"dsn" json:"dsn" jsonschema:"default=file:biospace?mode=memory&cache=shared,description=Session database connection string"`
	TTL             time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=24h,description=Idle sessions older than this are removed"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval" jsonschema:"default=10m,description=How often expired sessions are removed"`
}

// Load reads configuration from a YAML file, applies defaults and validates it
func Load(path string) (*Config, error) {
	cfg, err := Parse(path)
	if err != nil {
		return nil, err
	}

	// validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Parse reads configuration from a YAML file and applies defaults without validation.
// Empty path returns the defaults.
func Parse(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 90 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	if c.Dataset.Path == "" {
		c.Dataset.Path = "SB_publication_PMC.csv"
	}

	// set defaults for extraction
	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 20 * time.Second
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Mozilla/5.0 (compatible; BioSpace/1.0)"
	}
	if c.Extraction.MaxChars == 0 {
		c.Extraction.MaxChars = 20000
	}
	if c.Extraction.MaxBodyBytes == 0 {
		c.Extraction.MaxBodyBytes = 20 << 20
	}
	if c.Extraction.Mode == "" {
		c.Extraction.Mode = content.ModeParagraphs
	}

	if c.Cache.MaxKeys == 0 {
		c.Cache.MaxKeys = 256
	}

	// set defaults for LLM
	if c.LLM.Endpoint == "" {
		c.LLM.Endpoint = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gemini-2.5-flash"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 2048
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.LLM.SummaryInputChars == 0 {
		c.LLM.SummaryInputChars = 6000
	}
	if c.LLM.ChatContextSize == 0 {
		c.LLM.ChatContextSize = 5
	}
	if c.LLM.MaxConcurrent == 0 {
		c.LLM.MaxConcurrent = 3
	}

	// set defaults for session
	if c.Session.DSN == "" {
		c.Session.DSN = "file:biospace?mode=memory&cache=shared"
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 24 * time.Hour
	}
	if c.Session.CleanupInterval == 0 {
		c.Session.CleanupInterval = 10 * time.Minute
	}
}

// Validate checks configuration for correctness
func (c *Config) Validate() error {
	// validate LLM config
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if c.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if c.LLM.SummaryInputChars < 1 {
		return fmt.Errorf("llm.summary_input_chars must be at least 1")
	}
	if c.LLM.ChatContextSize < 1 {
		return fmt.Errorf("llm.chat_context_size must be at least 1")
	}
	if c.LLM.MaxConcurrent < 1 {
		return fmt.Errorf("llm.max_concurrent must be at least 1")
	}

	// validate extraction config
	if c.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}
	if c.Extraction.MaxChars < 1 {
		return fmt.Errorf("extraction max_chars must be at least 1")
	}
	if c.Extraction.MaxBodyBytes < 1 {
		return fmt.Errorf("extraction max_body_bytes must be positive")
	}
	if c.Extraction.Mode != content.ModeParagraphs && c.Extraction.Mode != content.ModeTrafilatura {
		return fmt.Errorf("extraction mode must be %q or %q, got %q", content.ModeParagraphs, content.ModeTrafilatura, c.Extraction.Mode)
	}

	if c.Cache.MaxKeys < 1 {
		return fmt.Errorf("cache max_keys must be at least 1")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl must be non-negative")
	}
	if c.Search.Limit < 0 {
		return fmt.Errorf("search limit must be non-negative")
	}

	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}

	// validate server config
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(c); err != nil {
		return fmt.Errorf("schema check: %w", err)
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}
