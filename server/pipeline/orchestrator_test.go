package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/crisispilot/crisispilot/server/analysis"
	"github.com/crisispilot/crisispilot/server/news"
)

// stubRetriever returns the placeholder set like a fully degraded searcher.
type stubRetriever struct {
	lastLocation string
}

func (r *stubRetriever) Search(_ context.Context, location string, _ int) []news.Record {
	r.lastLocation = location
	return news.PlaceholderRecords(location)
}

// stubAnalyzer returns a canned analysis response or an error.
type stubAnalyzer struct {
	response      string
	err           error
	lastNarrative string
}

func (a *stubAnalyzer) Analyze(_ context.Context, narrative, _ string) (string, error) {
	a.lastNarrative = narrative
	if a.err != nil {
		return "", a.err
	}
	return a.response, nil
}

// stubComposer records which branch was taken.
type stubComposer struct {
	alertCalls    int
	allClearCalls int
}

func (c *stubComposer) ComposeAlert(_ context.Context, assessment analysis.Assessment, location string) string {
	c.alertCalls++
	return "ALERT: " + assessment.Type + " in " + location
}

func (c *stubComposer) ComposeAllClear(location string) string {
	c.allClearCalls++
	return "NO IMMEDIATE THREATS DETECTED in " + location
}

// stubDeliverer reports a configured delivery result.
type stubDeliverer struct {
	result   bool
	messages []string
}

func (d *stubDeliverer) Deliver(_ context.Context, message string) bool {
	d.messages = append(d.messages, message)
	return d.result
}

func newTestOrchestrator(analyzer Analyzer, deliverer *stubDeliverer) (*Orchestrator, *stubComposer) {
	composer := &stubComposer{}
	o := New(&stubRetriever{}, analyzer, composer, deliverer, zap.NewNop().Sugar())
	return o, composer
}

func TestOrchestrator_Run_NoDisaster(t *testing.T) {
	analyzer := &stubAnalyzer{response: "DISASTER_FOUND: No\nSEVERITY: Low"}
	deliverer := &stubDeliverer{result: true}
	o, composer := newTestOrchestrator(analyzer, deliverer)

	outcome := o.Run(context.Background(), "Testville", 5)

	assert.Equal(t, StateDone, outcome.State)
	assert.False(t, outcome.Assessment.Found)
	assert.True(t, outcome.MessageSent)
	assert.Contains(t, outcome.MessageText, "NO IMMEDIATE THREATS DETECTED")
	assert.Equal(t, "DISASTER_FOUND: No\nSEVERITY: Low", outcome.RawAnalysis)
	assert.NotEmpty(t, outcome.RunID)

	// The clearing branch ran, the alerting branch did not
	assert.Equal(t, 1, composer.allClearCalls)
	assert.Zero(t, composer.alertCalls)

	// The narrative fed to analysis came from the retrieved placeholder set
	assert.Contains(t, analyzer.lastNarrative, "Testville")
}

func TestOrchestrator_Run_DisasterFound(t *testing.T) {
	analyzer := &stubAnalyzer{
		response: "DISASTER_FOUND: Yes\nDISASTER_TYPE: Flood\nSEVERITY: High\nDESCRIPTION: Rising river\nACTIONS: Evacuate",
	}
	deliverer := &stubDeliverer{result: true}
	o, composer := newTestOrchestrator(analyzer, deliverer)

	outcome := o.Run(context.Background(), "Riverton", 5)

	assert.Equal(t, StateDone, outcome.State)
	assert.True(t, outcome.Assessment.Found)
	assert.Equal(t, "Flood", outcome.Assessment.Type)
	assert.Contains(t, outcome.MessageText, "Flood")
	assert.Equal(t, 1, composer.alertCalls)
	assert.Zero(t, composer.allClearCalls)

	require.Len(t, deliverer.messages, 1)
	assert.Equal(t, outcome.MessageText, deliverer.messages[0])
}

func TestOrchestrator_Run_AnalysisFailure(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("credential invalid")}
	deliverer := &stubDeliverer{result: true}
	o, composer := newTestOrchestrator(analyzer, deliverer)

	outcome := o.Run(context.Background(), "Testville", 5)

	assert.Equal(t, StateFailed, outcome.State)
	assert.False(t, outcome.Assessment.Found)
	assert.False(t, outcome.MessageSent)
	assert.Empty(t, outcome.MessageText)
	assert.Contains(t, outcome.Error, "credential invalid")

	// Neither branch composed nor delivered anything
	assert.Zero(t, composer.alertCalls)
	assert.Zero(t, composer.allClearCalls)
	assert.Empty(t, deliverer.messages)
}

func TestOrchestrator_Run_DeliveryFailureStillReturnsMessage(t *testing.T) {
	analyzer := &stubAnalyzer{response: "DISASTER_FOUND: No"}
	deliverer := &stubDeliverer{result: false}
	o, _ := newTestOrchestrator(analyzer, deliverer)

	outcome := o.Run(context.Background(), "Testville", 5)

	// Delivery failed but the message is still returned for display
	assert.Equal(t, StateDone, outcome.State)
	assert.False(t, outcome.MessageSent)
	assert.NotEmpty(t, outcome.MessageText)
}

// loggedStates collects every "state" field across the observed entries,
// in emission order.
func loggedStates(logs *observer.ObservedLogs) []string {
	var states []string
	for _, entry := range logs.All() {
		for _, field := range entry.Context {
			if field.Key != "state" {
				continue
			}
			if field.String != "" {
				states = append(states, field.String)
			} else {
				states = append(states, fmt.Sprint(field.Interface))
			}
		}
	}
	return states
}

func TestOrchestrator_Run_LogsStateProgression(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core).Sugar()

	analyzer := &stubAnalyzer{response: "DISASTER_FOUND: No"}
	o := New(&stubRetriever{}, analyzer, &stubComposer{}, &stubDeliverer{result: true}, logger)

	o.Run(context.Background(), "Testville", 5)

	assert.Equal(t, []string{
		string(StateRetrieved),
		string(StateFormatted),
		string(StateAnalyzed),
		string(StateParsed),
		string(StateClearing),
		string(StateDelivered),
	}, loggedStates(logs))
}

func TestOrchestrator_Run_UniqueRunIDs(t *testing.T) {
	analyzer := &stubAnalyzer{response: "DISASTER_FOUND: No"}
	o, _ := newTestOrchestrator(analyzer, &stubDeliverer{})

	first := o.Run(context.Background(), "Testville", 5)
	second := o.Run(context.Background(), "Testville", 5)

	assert.NotEqual(t, first.RunID, second.RunID)
}
