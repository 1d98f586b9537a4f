package factory

import (
	"fmt"

	"ai-study-tutor-be/pkg/llm"
	"ai-study-tutor-be/pkg/llm/openai"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
)

// NewLLMProvider picks a backend by name. Both speak the OpenAI wire format;
// they differ only in the default endpoint.
func NewLLMProvider(providerType, apiKey, modelName, baseURL string, opts ...llm.Option) (llm.LLMProvider, error) {
	switch providerType {
	case ProviderGroq, "":
		if baseURL == "" {
			baseURL = openai.GroqBaseURL
		}
		return openai.NewProvider(ProviderGroq, apiKey, baseURL, modelName, opts...), nil
	case ProviderOpenAI:
		return openai.NewProvider(ProviderOpenAI, apiKey, baseURL, modelName, opts...), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
