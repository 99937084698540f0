package translate

import (
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// constructor builds one provider adapter from its configuration.
type constructor func(ProviderConfig, *logrus.Logger) Adapter

// constructors is the closed provider set. Registering a provider here
// is the only way it can be dispatched, so a typo'd id can never fall
// through silently.
var constructors = map[string]constructor{
	"google":   NewGoogleAdapter,
	"bing":     NewBingAdapter,
	"yandex":   NewYandexAdapter,
	"deepl":    NewDeepLAdapter,
	"openai":   NewOpenAIAdapter,
	"gemini":   NewGeminiAdapter,
	"claude":   NewClaudeAdapter,
	"deepseek": NewDeepSeekAdapter,
	"grok":     NewGrokAdapter,
	"ollama":   NewOllamaAdapter,
}

// Registry owns the adapter instances and their session state. One
// adapter is constructed per provider id and cached for the process
// lifetime; callers hold only provider id strings.
type Registry struct {
	mu       sync.Mutex
	settings Settings
	logger   *logrus.Logger
	adapters map[string]Adapter
}

// NewRegistry creates a registry over the supplied settings.
func NewRegistry(settings Settings, logger *logrus.Logger) *Registry {
	if logger == nil {
		logger = logrus.New()
	}
	return &Registry{
		settings: settings,
		logger:   logger,
		adapters: make(map[string]Adapter, len(constructors)),
	}
}

// GetAdapter returns the cached adapter for a provider id,
// constructing and caching exactly one on first use. Lookup is
// case-insensitive; ids outside the closed set fail with
// UNSUPPORTED_PROVIDER.
func (r *Registry) GetAdapter(providerID string) (Adapter, error) {
	id := strings.ToLower(strings.TrimSpace(providerID))

	r.mu.Lock()
	defer r.mu.Unlock()

	if adapter, ok := r.adapters[id]; ok {
		return adapter, nil
	}

	build, ok := constructors[id]
	if !ok {
		return nil, NewError(KindUnsupportedProvider, "registry", "unknown provider: "+providerID)
	}

	r.logger.WithFields(logrus.Fields{
		"provider": id,
	}).Info("Creating translator adapter instance")

	adapter := build(r.settings.Provider(id), r.logger)
	r.adapters[id] = adapter
	return adapter, nil
}

// ResetSession clears the SessionContext of one cached adapter, or of
// all cached adapters when providerID is empty. Resetting an adapter
// that was never constructed, or one without session state, is a no-op;
// the operation is idempotent.
func (r *Registry) ResetSession(providerID string) error {
	id := strings.ToLower(strings.TrimSpace(providerID))

	r.mu.Lock()
	defer r.mu.Unlock()

	if id == "" {
		for pid, adapter := range r.adapters {
			if holder, ok := adapter.(SessionHolder); ok {
				holder.ResetSession()
				RecordSessionReset(pid)
			}
		}
		r.logger.Debug("Reset all provider sessions")
		return nil
	}

	if _, ok := constructors[id]; !ok {
		return NewError(KindUnsupportedProvider, "registry", "unknown provider: "+providerID)
	}
	if adapter, ok := r.adapters[id]; ok {
		if holder, ok := adapter.(SessionHolder); ok {
			holder.ResetSession()
			RecordSessionReset(id)
		}
	}
	r.logger.WithFields(logrus.Fields{
		"provider": id,
	}).Debug("Reset provider session")
	return nil
}

// ListSupported returns the closed provider id set, sorted.
func (r *Registry) ListSupported() []string {
	ids := make([]string, 0, len(constructors))
	for id := range constructors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
