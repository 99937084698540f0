package translate

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultOpenAIURL is the default OpenAI API base URL.
	DefaultOpenAIURL = "https://api.openai.com"
	// DefaultOpenAIModel is the default OpenAI model id.
	DefaultOpenAIModel = "gpt-4o-mini"
)

// NewOpenAIAdapter creates the OpenAI chat-completion adapter.
func NewOpenAIAdapter(cfg ProviderConfig, logger *logrus.Logger) Adapter {
	return newChatAdapter("openai", cfg, chatDefaults{
		BaseURL:     DefaultOpenAIURL,
		Model:       DefaultOpenAIModel,
		Path:        "/v1/chat/completions",
		RequiresKey: true,
	}, logger)
}
