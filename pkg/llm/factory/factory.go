package factory

import (
	"fmt"

	"it-helpdesk-be/pkg/llm"
	"it-helpdesk-be/pkg/llm/ollama"
	"it-helpdesk-be/pkg/llm/openai"
)

// NewLLMProvider builds the configured provider. A missing OpenAI key is
// not an error: the disabled provider is returned so every request takes
// the deterministic local fallback path.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if apiKey == "" {
			return llm.NewDisabled(), nil
		}
		return openai.NewOpenAIProvider(apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "none", "":
		return llm.NewDisabled(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
