package translate

// ProviderConfig holds the configuration one adapter needs: API key,
// endpoint override, model id and prompt templates. It is supplied by
// the external settings collaborator; the pipeline never persists it.
type ProviderConfig struct {
	// APIKey authenticates against the vendor. Required by every
	// provider except google and ollama.
	APIKey string
	// BaseURL overrides the vendor's default endpoint.
	BaseURL string
	// Model is the model id for generative providers.
	Model string
	// Prompts overrides the built-in prompt templates per mode.
	Prompts PromptSet
	// TimeoutSeconds bounds a single upstream call. Zero uses the
	// default.
	TimeoutSeconds int
}

// Settings carries per-provider configuration keyed by provider id.
type Settings struct {
	Providers map[string]ProviderConfig
}

// Provider returns the configuration for a provider id, or the zero
// value when none was supplied. Adapters apply their own defaults and
// fail fast on genuinely required fields.
func (s Settings) Provider(id string) ProviderConfig {
	if s.Providers == nil {
		return ProviderConfig{}
	}
	return s.Providers[id]
}
