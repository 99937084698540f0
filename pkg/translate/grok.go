package translate

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultGrokURL is the default xAI API base URL.
	DefaultGrokURL = "https://api.x.ai"
	// DefaultGrokModel is the default Grok model id.
	DefaultGrokModel = "grok-2-latest"
)

// NewGrokAdapter creates the xAI Grok chat-completion adapter. The xAI
// API is OpenAI-compatible.
func NewGrokAdapter(cfg ProviderConfig, logger *logrus.Logger) Adapter {
	return newChatAdapter("grok", cfg, chatDefaults{
		BaseURL:     DefaultGrokURL,
		Model:       DefaultGrokModel,
		Path:        "/v1/chat/completions",
		RequiresKey: true,
	}, logger)
}
