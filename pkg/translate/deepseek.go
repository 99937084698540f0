package translate

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultDeepSeekURL is the default DeepSeek API base URL.
	DefaultDeepSeekURL = "https://api.deepseek.com"
	// DefaultDeepSeekModel is the default DeepSeek model id.
	DefaultDeepSeekModel = "deepseek-chat"
)

// NewDeepSeekAdapter creates the DeepSeek chat-completion adapter.
// DeepSeek exposes an OpenAI-compatible API.
func NewDeepSeekAdapter(cfg ProviderConfig, logger *logrus.Logger) Adapter {
	return newChatAdapter("deepseek", cfg, chatDefaults{
		BaseURL:     DefaultDeepSeekURL,
		Model:       DefaultDeepSeekModel,
		Path:        "/chat/completions",
		RequiresKey: true,
	}, logger)
}
