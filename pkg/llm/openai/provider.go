package openai

import (
	"context"
	"fmt"

	"ai-study-tutor-be/pkg/llm"

	goopenai "github.com/sashabaranov/go-openai"
)

const (
	GroqBaseURL = "https://api.groq.com/openai/v1"

	defaultTemperature = 0.7
	defaultMaxTokens   = 2048
)

// Provider talks to any OpenAI-compatible chat completion endpoint
// (OpenAI itself, Groq, a local Ollama /v1).
type Provider struct {
	client    *goopenai.Client
	name      string
	modelName string
	hasKey    bool
	defaults  llm.Options
}

var _ llm.LLMProvider = (*Provider)(nil)

// NewProvider builds a client for baseURL. An empty apiKey is accepted here
// and reported by Chat, so a misconfigured key never blocks startup.
func NewProvider(name, apiKey, baseURL, modelName string, opts ...llm.Option) *Provider {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &Provider{
		client:    goopenai.NewClientWithConfig(cfg),
		name:      name,
		modelName: modelName,
		hasKey:    apiKey != "",
		defaults: llm.Apply(llm.Options{
			Temperature: defaultTemperature,
			MaxTokens:   defaultMaxTokens,
		}, opts...),
	}
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if !p.hasKey {
		return "", llm.ErrMissingAPIKey
	}

	options := llm.Apply(p.defaults, opts...)
	model := p.modelName
	if options.Model != "" {
		model = options.Model
	}

	messages := make([]goopenai.ChatCompletionMessage, 0, len(history))
	for _, msg := range history {
		messages = append(messages, convertMessage(msg))
	}

	resp, err := p.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(options.Temperature),
		MaxTokens:   options.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func convertMessage(msg llm.Message) goopenai.ChatCompletionMessage {
	role := msg.Role
	if role == "model" {
		role = llm.RoleAssistant
	}

	if msg.ImageURL == "" {
		return goopenai.ChatCompletionMessage{Role: role, Content: msg.Content}
	}

	return goopenai.ChatCompletionMessage{
		Role: role,
		MultiContent: []goopenai.ChatMessagePart{
			{
				Type: goopenai.ChatMessagePartTypeText,
				Text: msg.Content,
			},
			{
				Type: goopenai.ChatMessagePartTypeImageURL,
				ImageURL: &goopenai.ChatMessageImageURL{
					URL:    msg.ImageURL,
					Detail: goopenai.ImageURLDetailAuto,
				},
			},
		},
	}
}
