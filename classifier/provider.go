package classifier

import (
	"net/http"
	"sync"
)

// Provider abstracts an OpenAI-compatible chat-completions endpoint. The
// classification result quality is the collaborator's problem; this package
// only moves requests and parses the answer.
type Provider interface {
	// Name returns the provider identifier (e.g. "openai", "gemini").
	Name() string

	// BuildURL constructs the full API endpoint URL.
	BuildURL(baseURL string) string

	// SetHeaders adds provider-specific auth headers to the request.
	SetHeaders(req *http.Request)
}

var (
	providerRegistry = make(map[string]Provider)
	providerMu       sync.RWMutex
)

// RegisterProvider adds a provider to the registry.
func RegisterProvider(p Provider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	providerRegistry[p.Name()] = p
}

// GetProvider retrieves a provider by name.
func GetProvider(name string) Provider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return providerRegistry[name]
}
