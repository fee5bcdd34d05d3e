package llm

import (
	"fmt"

	"github.com/samber/lo"
)

// ProviderType identifies a content-generation backend.
type ProviderType string

const (
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
	ProviderGoogle    ProviderType = "google"
	ProviderOllama    ProviderType = "ollama"
	ProviderMock      ProviderType = "mock"
)

// KnownProviders lists every provider type the factory can build.
var KnownProviders = []ProviderType{
	ProviderAnthropic,
	ProviderOpenAI,
	ProviderGoogle,
	ProviderOllama,
	ProviderMock,
}

// ProviderConfig configures a content-generation provider. APIKey may be
// empty, in which case the provider falls back to its conventional
// environment variable.
type ProviderConfig struct {
	Type      ProviderType `json:"type" yaml:"type"`
	APIKey    string       `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	Model     string       `json:"model,omitempty" yaml:"model,omitempty"`
	ServerURL string       `json:"server_url,omitempty" yaml:"server_url,omitempty"`
}

// Validate checks the provider configuration.
func (c ProviderConfig) Validate() error {
	if c.Type == "" {
		return fmt.Errorf("provider type is required")
	}
	if !lo.Contains(KnownProviders, c.Type) {
		return fmt.Errorf("unknown provider type %q", c.Type)
	}
	return nil
}
