package analysis

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/crisispilot/crisispilot/server/genai"
)

// analysisTemperature keeps the analysis persona near-deterministic.
const analysisTemperature = 0.1

// analysisPrompt is the fixed instruction template for the analysis call.
// The five labeled output lines form the contract consumed by ParseAssessment.
const analysisPrompt = `You are a disaster monitoring AI assistant. Analyze the following news data and determine if there are any disasters or emergencies relevant to the user's location.

User Location: %s
News Data: %s

Please analyze and respond with:
1. Is there any disaster/emergency near the user's location? (Yes/No)
2. Type of disaster (if any)
3. Severity level (Low/Medium/High)
4. Brief description
5. Recommended actions

Format your response as:
DISASTER_FOUND: [Yes/No]
DISASTER_TYPE: [type]
SEVERITY: [level]
DESCRIPTION: [brief description]
ACTIONS: [recommended actions]`

// Analyzer asks the language model whether the retrieved news describes a
// disaster near the user's location. This is the only pipeline stage whose
// error aborts a run; adherence of the output to the labeled format is not
// validated here, that is the parser's job.
type Analyzer struct {
	model  genai.Generator
	logger *zap.SugaredLogger
}

// NewAnalyzer creates a new analyzer backed by the given model.
func NewAnalyzer(model genai.Generator, logger *zap.SugaredLogger) *Analyzer {
	return &Analyzer{
		model:  model,
		logger: logger,
	}
}

// Analyze runs the analysis call and returns the model's free-form response.
func (a *Analyzer) Analyze(ctx context.Context, narrative, location string) (string, error) {
	prompt := fmt.Sprintf(analysisPrompt, location, narrative)

	resp, err := a.model.Generate(ctx, genai.PromptInput(prompt, analysisTemperature))
	if err != nil {
		return "", errors.Wrap(err, "analysis call failed")
	}

	text := genai.ResponseText(resp)
	a.logger.Debugw("Analysis completed", "location", location, "responseLength", len(text))
	return text, nil
}
