package factory

import (
	"fmt"
	"time"

	"telecom-complaint-be/pkg/llm"
	"telecom-complaint-be/pkg/llm/azure"
	"telecom-complaint-be/pkg/llm/ollama"
)

// Settings carries everything a provider may need. Constructed once from
// config; no provider reads ambient environment state.
type Settings struct {
	Provider        string // "azure" or "ollama"
	Model           string // Azure deployment name or Ollama model
	OllamaBaseURL   string
	AzureEndpoint   string
	AzureAPIKey     string
	AzureAPIVersion string
	Timeout         time.Duration
}

func NewLLMProvider(s Settings) (llm.LLMProvider, error) {
	switch s.Provider {
	case "azure":
		if s.AzureEndpoint == "" || s.AzureAPIKey == "" {
			return nil, fmt.Errorf("azure provider requires endpoint and api key")
		}
		return azure.NewAzureProvider(s.AzureEndpoint, s.AzureAPIKey, s.AzureAPIVersion, s.Model, s.Timeout), nil
	case "ollama":
		baseURL := s.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, s.Model, s.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}
