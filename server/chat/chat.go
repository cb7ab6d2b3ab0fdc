// Package chat provides the conversational safety-guidance surface. It sits
// outside the alert pipeline; the pipeline only feeds it optional disaster
// context to ground its answers.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/crisispilot/crisispilot/server/genai"
)

// chatTemperature keeps responses conversational rather than clinical.
const chatTemperature = 0.7

// maxTurns bounds the retained conversation context.
const maxTurns = 3

// chatPrompt frames every conversational call.
const chatPrompt = `You are a helpful disaster response assistant. Answer the user's question based on the context provided.

Context: %s
User Question: %s

Provide a helpful, clear, and supportive response. If you don't have enough information, suggest where they might find more help.

Response:`

// Turn is one question/response exchange.
type Turn struct {
	Question string
	Response string
}

// Agent answers safety questions with bounded conversational memory.
// Safe for concurrent use.
type Agent struct {
	model  genai.Generator
	logger *zap.SugaredLogger

	mu      sync.Mutex
	history []Turn
}

// NewAgent creates a new chat agent backed by the given model.
func NewAgent(model genai.Generator, logger *zap.SugaredLogger) *Agent {
	return &Agent{
		model:  model,
		logger: logger,
	}
}

// Chat answers a user question, folding recent history and any additional
// context (e.g. a fresh disaster assessment) into the prompt. On model
// failure it degrades to an apology carrying the error text; it never
// returns an error itself.
func (a *Agent) Chat(ctx context.Context, question, additionalContext string) string {
	fullContext := strings.TrimSpace(a.renderHistory() + "\n" + additionalContext)
	prompt := fmt.Sprintf(chatPrompt, fullContext, question)

	resp, err := a.model.Generate(ctx, genai.PromptInput(prompt, chatTemperature))
	if err != nil {
		a.logger.Warnw("Chat call failed", "error", err)
		return fmt.Sprintf("I'm sorry, I encountered an error: %s. Please try again.", err)
	}

	response := strings.TrimSpace(genai.ResponseText(resp))
	a.remember(question, response)
	return response
}

// EmergencyResponse produces an immediate action guide when a disaster is
// first detected. When the model is unreachable it returns the fixed
// per-disaster protocol so the guidance never goes missing in an emergency.
func (a *Agent) EmergencyResponse(ctx context.Context, disasterType, safetyContext string) string {
	prompt := fmt.Sprintf(`🚨 DISASTER EMERGENCY DETECTED 🚨

Disaster Type: %s
Context: %s

Provide a comprehensive emergency response guide that includes:

1. IMMEDIATE ACTIONS people should take RIGHT NOW
2. SAFETY PRIORITIES and life-saving measures
3. SHELTER and PROTECTION guidance
4. EVACUATION procedures if needed
5. EMERGENCY SUPPLIES checklist
6. COMMUNICATION steps
7. What to AVOID for safety

Make this detailed, actionable, and focused on immediate safety.
Use clear formatting with numbers and bullet points.
This could save lives - be thorough and specific.`, disasterType, safetyContext)

	resp, err := a.model.Generate(ctx, genai.PromptInput(prompt, chatTemperature))
	if err != nil {
		a.logger.Warnw("Emergency response call failed, using fallback guide",
			"disasterType", disasterType, "error", err)
		return FallbackGuide(disasterType)
	}

	response := strings.TrimSpace(genai.ResponseText(resp))
	if response == "" {
		return FallbackGuide(disasterType)
	}

	return fmt.Sprintf("🚨 **%s EMERGENCY PROTOCOL ACTIVATED** 🚨\n\n%s",
		strings.ToUpper(disasterType), response)
}

// ClearHistory drops the retained conversation context.
func (a *Agent) ClearHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

// History returns a copy of the retained exchanges, oldest first.
func (a *Agent) History() []Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Turn(nil), a.history...)
}

// remember appends an exchange, keeping only the most recent turns.
func (a *Agent) remember(question, response string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.history = append(a.history, Turn{Question: question, Response: response})
	if len(a.history) > maxTurns {
		a.history = a.history[len(a.history)-maxTurns:]
	}
}

// renderHistory flattens retained exchanges into prompt context.
func (a *Agent) renderHistory() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	var b strings.Builder
	for _, turn := range a.history {
		fmt.Fprintf(&b, "User: %s\nAssistant: %s\n", turn.Question, turn.Response)
	}
	return b.String()
}
