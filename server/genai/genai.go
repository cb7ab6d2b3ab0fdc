// Package genai defines the boundary to the text-generation provider.
// Components depend on the narrow Generator interface so tests can slot in
// the llm-sdk mock model.
package genai

import (
	"context"
	"strings"

	llmsdk "github.com/hoangvvo/llm-sdk/sdk-go"
	"github.com/hoangvvo/llm-sdk/sdk-go/openai"
)

const (
	// DefaultBaseURL is Groq's OpenAI-compatible API endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModelID is the model used for all personas.
	DefaultModelID = "llama-3.3-70b-versatile"
)

// Generator is the single model operation the pipeline consumes.
type Generator interface {
	Generate(ctx context.Context, input *llmsdk.LanguageModelInput) (*llmsdk.ModelResponse, error)
}

// NewGroqModel creates the production language model against Groq's
// OpenAI-compatible endpoint.
func NewGroqModel(apiKey, baseURL, modelID string) *openai.OpenAIModel {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if modelID == "" {
		modelID = DefaultModelID
	}
	return openai.NewOpenAIModel(modelID, openai.OpenAIModelOptions{
		APIKey:  apiKey,
		BaseURL: baseURL,
	})
}

// ResponseText concatenates the text parts of a model response.
func ResponseText(resp *llmsdk.ModelResponse) string {
	if resp == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Content {
		if part.TextPart != nil {
			b.WriteString(part.TextPart.Text)
		}
	}
	return b.String()
}

// PromptInput builds a single-turn generation input at the given temperature.
func PromptInput(prompt string, temperature float64) *llmsdk.LanguageModelInput {
	return &llmsdk.LanguageModelInput{
		Messages: []llmsdk.Message{
			llmsdk.NewUserMessage(llmsdk.NewTextPart(prompt)),
		},
		Temperature: &temperature,
	}
}
