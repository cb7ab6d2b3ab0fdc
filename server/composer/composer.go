// Package composer renders human-readable alert messages from disaster
// assessments. Alert messages are written by the model; every other message
// (all-clear, test, custom, and the fallback used when the model call
// fails) is a deterministic template.
package composer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/crisispilot/crisispilot/server/analysis"
	"github.com/crisispilot/crisispilot/server/genai"
)

// composeTemperature balances professional tone with adaptive wording.
const composeTemperature = 0.3

// alertPrompt asks the model for a structured, multi-section alert.
const alertPrompt = `You are a professional emergency alert system. Create a comprehensive, well-formatted disaster alert message.

DISASTER INFORMATION:
- Type: %s
- Location: %s
- Severity Level: %s
- Description: %s
- Time: %s
- Recommended Actions: %s

Create a professional emergency alert that includes:
1. Clear, attention-grabbing header with appropriate emoji
2. Essential disaster information in organized sections
3. Severity level with visual indicators
4. Specific location details
5. Immediate action steps
6. Safety recommendations
7. Professional closing with authority reference

Format the message to be:
- CLEAR and EASY TO READ
- PROFESSIONAL but URGENT in tone
- COMPREHENSIVE with all critical details
- ACTION-ORIENTED with specific steps
- WELL-STRUCTURED with proper sections

Generate the complete alert message:`

// Composer produces alert, all-clear, and diagnostic messages.
type Composer struct {
	model  genai.Generator
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new composer. The clock is injectable so the deterministic
// templates can be verified byte-for-byte under test.
func New(model genai.Generator, logger *zap.SugaredLogger) *Composer {
	return &Composer{
		model:  model,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock sets a custom clock (useful for testing).
func (c *Composer) SetClock(now func() time.Time) {
	c.now = now
}

// ComposeAlert generates a professional alert message for a detected
// disaster. If the model call fails or returns an empty result, the
// deterministic fallback template is used so the system stays usable when
// the model is unreachable.
func (c *Composer) ComposeAlert(ctx context.Context, assessment analysis.Assessment, location string) string {
	timestamp := c.now().UTC().Format("2006-01-02 15:04:05 UTC")
	prompt := fmt.Sprintf(alertPrompt,
		assessment.Type,
		location,
		assessment.Severity,
		assessment.Description,
		timestamp,
		assessment.Actions,
	)

	resp, err := c.model.Generate(ctx, genai.PromptInput(prompt, composeTemperature))
	if err != nil {
		c.logger.Warnw("Alert message generation failed, using fallback template", "error", err)
		return c.FallbackAlert(assessment, location)
	}

	message := strings.TrimSpace(genai.ResponseText(resp))
	if message == "" {
		c.logger.Warnw("Alert message generation returned empty result, using fallback template")
		return c.FallbackAlert(assessment, location)
	}

	return message
}

// FallbackAlert assembles an alert directly from the assessment fields.
// Byte-for-byte deterministic given the same assessment and clock.
func (c *Composer) FallbackAlert(assessment analysis.Assessment, location string) string {
	return fmt.Sprintf(`🚨 EMERGENCY ALERT 🚨

DISASTER TYPE: %s
LOCATION: %s
SEVERITY: %s
TIME: %s

SITUATION:
%s

IMMEDIATE ACTIONS:
• Stay calm and alert
• Follow local emergency guidance
• Keep emergency supplies ready
• Monitor official communications
• Contact emergency services if needed

⚠️ This is an automated alert from CrisisPilot – Global Disaster Swift Response Assistant.
Stay safe and follow official emergency protocols.`,
		assessment.Type,
		location,
		assessment.Severity,
		c.now().UTC().Format("2006-01-02 15:04:05"),
		assessment.Description,
	)
}

// ComposeAllClear renders the fixed message sent when no disaster is
// detected. No model call is made.
func (c *Composer) ComposeAllClear(location string) string {
	return fmt.Sprintf(`✅ SAFETY STATUS UPDATE ✅

LOCATION: %s
STATUS: NO IMMEDIATE THREATS DETECTED
SCAN TIME: %s

CURRENT SITUATION:
• No active disasters detected in your area
• Weather conditions appear stable
• Emergency services report normal operations
• No evacuation orders or warnings issued

RECOMMENDATIONS:
• Stay informed through local news
• Keep emergency kit updated
• Review family emergency plan
• Check back regularly for updates

🛡️ CrisisPilot: Global Disaster Swift Response Assistant continues monitoring for your safety.`,
		location,
		c.now().UTC().Format("2006-01-02 15:04:05"),
	)
}

// ComposeTestMessage renders the operator-triggered system test message.
func (c *Composer) ComposeTestMessage() string {
	return fmt.Sprintf(`🧪 CrisisPilot: Global Disaster Response – System Test Mode 🧪

ALERT SYSTEM STATUS: ✅ OPERATIONAL
TEST TIME: %s

This is a test of the CrisisPilot Emergency Alert System.
- All systems are functioning correctly
- Alert delivery confirmed
- Ready for emergency monitoring

If this was a real emergency, you would receive:
• Detailed disaster information
• Specific location data
• Severity assessment
• Recommended safety actions
• Emergency contact information

📱 CrisisPilot: Global Disaster Swift Response Assistant
Your AI-powered emergency monitoring system is active.`,
		c.now().UTC().Format("2006-01-02 15:04:05"),
	)
}

// ComposeCustomMessage passes an operator-supplied message through
// unchanged apart from whitespace trimming.
func (c *Composer) ComposeCustomMessage(text string) string {
	return strings.TrimSpace(text)
}
