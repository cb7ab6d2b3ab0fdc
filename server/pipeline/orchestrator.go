// Package pipeline sequences the alert stages: fetch, analyze, parse,
// decide, compose, deliver. Each stage owns its input for the duration of
// its call and returns a new value; the orchestrator holds no state across
// runs, so concurrent hosts can run one orchestrator call per request
// without sharing anything.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crisispilot/crisispilot/server/analysis"
	"github.com/crisispilot/crisispilot/server/news"
)

// Retriever fetches location-relevant news records.
type Retriever interface {
	Search(ctx context.Context, location string, maxResults int) []news.Record
}

// Analyzer produces the model's free-form disaster analysis.
type Analyzer interface {
	Analyze(ctx context.Context, narrative, location string) (string, error)
}

// Composer renders the outgoing alert or all-clear message.
type Composer interface {
	ComposeAlert(ctx context.Context, assessment analysis.Assessment, location string) string
	ComposeAllClear(location string) string
}

// Deliverer posts a composed message to the notification channel.
type Deliverer interface {
	Deliver(ctx context.Context, message string) bool
}

// Orchestrator runs the alert pipeline end to end. The analysis stage is
// the only one allowed to abort a run; its errors are converted into a
// FAILED outcome rather than surfaced to the caller.
type Orchestrator struct {
	retriever Retriever
	analyzer  Analyzer
	composer  Composer
	deliverer Deliverer
	logger    *zap.SugaredLogger
}

// New creates a new orchestrator over the given stages.
func New(retriever Retriever, analyzer Analyzer, composer Composer, deliverer Deliverer, logger *zap.SugaredLogger) *Orchestrator {
	return &Orchestrator{
		retriever: retriever,
		analyzer:  analyzer,
		composer:  composer,
		deliverer: deliverer,
		logger:    logger,
	}
}

// Run executes one synchronous pipeline pass for a location and returns the
// complete outcome. It never returns an error; failures are data.
func (o *Orchestrator) Run(ctx context.Context, location string, maxResults int) Outcome {
	runID := uuid.NewString()
	logger := o.logger.With("runId", runID, "location", location)
	state := StateStart

	logger.Infow("Pipeline run started")

	records := o.retriever.Search(ctx, location, maxResults)
	state = StateRetrieved
	logger.Debugw("News retrieved", "state", state, "records", len(records))

	narrative := news.FormatNarrative(records)
	state = StateFormatted
	logger.Debugw("Narrative formatted", "state", state)

	raw, err := o.analyzer.Analyze(ctx, narrative, location)
	if err != nil {
		logger.Errorw("Analysis failed, aborting run", "state", state, "error", err)
		return Outcome{
			RunID:      runID,
			State:      StateFailed,
			Assessment: analysis.DefaultAssessment(),
			Error:      err.Error(),
		}
	}
	state = StateAnalyzed
	logger.Debugw("Analysis completed", "state", state)

	assessment := analysis.ParseAssessment(raw)
	state = StateParsed
	logger.Debugw("Assessment parsed", "state", state, "found", assessment.Found)

	var message string
	if assessment.Found {
		state = StateAlerting
		logger.Infow("Disaster detected, composing alert",
			"state", state, "type", assessment.Type, "severity", assessment.Severity)
		message = o.composer.ComposeAlert(ctx, assessment, location)
	} else {
		state = StateClearing
		logger.Infow("No disaster detected, composing all-clear", "state", state)
		message = o.composer.ComposeAllClear(location)
	}

	sent := o.deliverer.Deliver(ctx, message)
	state = StateDelivered
	logger.Infow("Delivery finished", "state", state, "sent", sent)

	state = StateDone
	return Outcome{
		RunID:       runID,
		State:       state,
		Assessment:  assessment,
		MessageSent: sent,
		MessageText: message,
		RawAnalysis: raw,
	}
}
