package composer

import (
	"context"
	"testing"
	"time"

	llmsdk "github.com/hoangvvo/llm-sdk/sdk-go"
	"github.com/hoangvvo/llm-sdk/sdk-go/llmsdktest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crisispilot/crisispilot/server/analysis"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func testAssessment() analysis.Assessment {
	return analysis.Assessment{
		Found:       true,
		Type:        "Flood",
		Severity:    "High",
		Description: "Rising river",
		Actions:     "Evacuate",
	}
}

func textResponse(text string) llmsdk.ModelResponse {
	return llmsdk.ModelResponse{
		Content: []llmsdk.Part{llmsdk.NewTextPart(text)},
	}
}

func TestComposer_ComposeAlert_UsesModel(t *testing.T) {
	model := llmsdktest.NewMockLanguageModel()
	model.EnqueueGenerateResult(llmsdktest.NewMockGenerateResultResponse(
		textResponse("🚨 FLOOD ALERT for Riverton 🚨"),
	))

	c := New(model, zap.NewNop().Sugar())
	c.SetClock(fixedClock)

	message := c.ComposeAlert(context.Background(), testAssessment(), "Riverton")

	assert.Equal(t, "🚨 FLOOD ALERT for Riverton 🚨", message)

	// The prompt carries the assessment fields and timestamp
	inputs := model.TrackedGenerateInputs()
	require.Len(t, inputs, 1)
	require.NotNil(t, inputs[0].Temperature)
	assert.InDelta(t, 0.3, *inputs[0].Temperature, 0.001)

	prompt := inputs[0].Messages[0].UserMessage.Content[0].TextPart.Text
	assert.Contains(t, prompt, "Type: Flood")
	assert.Contains(t, prompt, "Severity Level: High")
	assert.Contains(t, prompt, "2026-08-30 12:00:00 UTC")
}

func TestComposer_ComposeAlert_FallbackOnError(t *testing.T) {
	model := llmsdktest.NewMockLanguageModel()
	model.EnqueueGenerateResult(llmsdktest.NewMockGenerateResultError(
		errors.New("model unreachable"),
	))

	c := New(model, zap.NewNop().Sugar())
	c.SetClock(fixedClock)

	message := c.ComposeAlert(context.Background(), testAssessment(), "Riverton")

	assert.Contains(t, message, "🚨 EMERGENCY ALERT 🚨")
	assert.Contains(t, message, "DISASTER TYPE: Flood")
	assert.Contains(t, message, "LOCATION: Riverton")
	assert.Contains(t, message, "SEVERITY: High")
	assert.Contains(t, message, "Rising river")
}

func TestComposer_ComposeAlert_FallbackOnEmptyResult(t *testing.T) {
	model := llmsdktest.NewMockLanguageModel()
	model.EnqueueGenerateResult(llmsdktest.NewMockGenerateResultResponse(
		textResponse("   \n  "),
	))

	c := New(model, zap.NewNop().Sugar())
	c.SetClock(fixedClock)

	message := c.ComposeAlert(context.Background(), testAssessment(), "Riverton")

	assert.Contains(t, message, "🚨 EMERGENCY ALERT 🚨")
}

func TestComposer_FallbackAlert_Deterministic(t *testing.T) {
	c := New(llmsdktest.NewMockLanguageModel(), zap.NewNop().Sugar())
	c.SetClock(fixedClock)

	first := c.FallbackAlert(testAssessment(), "Riverton")
	second := c.FallbackAlert(testAssessment(), "Riverton")

	assert.Equal(t, first, second)
}

func TestComposer_ComposeAllClear(t *testing.T) {
	c := New(llmsdktest.NewMockLanguageModel(), zap.NewNop().Sugar())
	c.SetClock(fixedClock)

	message := c.ComposeAllClear("Testville")

	assert.Contains(t, message, "NO IMMEDIATE THREATS DETECTED")
	assert.Contains(t, message, "LOCATION: Testville")
	assert.Contains(t, message, "SCAN TIME: 2026-08-30 12:00:00")
}

func TestComposer_ComposeAllClear_NoModelCall(t *testing.T) {
	model := llmsdktest.NewMockLanguageModel()
	c := New(model, zap.NewNop().Sugar())

	c.ComposeAllClear("Testville")

	assert.Empty(t, model.TrackedGenerateInputs())
}

func TestComposer_ComposeTestMessage(t *testing.T) {
	c := New(llmsdktest.NewMockLanguageModel(), zap.NewNop().Sugar())
	c.SetClock(fixedClock)

	message := c.ComposeTestMessage()

	assert.Contains(t, message, "System Test Mode")
	assert.Contains(t, message, "TEST TIME: 2026-08-30 12:00:00")
}

func TestComposer_ComposeCustomMessage(t *testing.T) {
	c := New(llmsdktest.NewMockLanguageModel(), zap.NewNop().Sugar())

	assert.Equal(t, "manual check", c.ComposeCustomMessage("  manual check \n"))
}
