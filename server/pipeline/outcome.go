package pipeline

import "github.com/crisispilot/crisispilot/server/analysis"

// State identifies where a pipeline run is (or finished) in its staged
// progression.
type State string

// Pipeline states in execution order. FAILED is terminal and reachable
// only from an analysis-call error; every other stage degrades in place.
const (
	StateStart     State = "START"
	StateRetrieved State = "RETRIEVED"
	StateFormatted State = "FORMATTED"
	StateAnalyzed  State = "ANALYZED"
	StateParsed    State = "PARSED"
	StateAlerting  State = "ALERTING"
	StateClearing  State = "CLEARING"
	StateDelivered State = "DELIVERED"
	StateDone      State = "DONE"
	StateFailed    State = "FAILED"
)

// Outcome is the end-to-end result of one pipeline run. The orchestrator
// owns it and is the only component that exposes it outward. It is not
// persisted across runs.
type Outcome struct {
	// RunID uniquely identifies this pipeline run
	RunID string `json:"runId"`

	// State is the terminal state the run reached (DONE or FAILED)
	State State `json:"state"`

	// Assessment is the parsed disaster analysis
	Assessment analysis.Assessment `json:"assessment"`

	// MessageSent indicates whether delivery succeeded
	MessageSent bool `json:"messageSent"`

	// MessageText is the composed alert or all-clear message. It is
	// returned even when delivery fails so the caller can still display it.
	MessageText string `json:"messageText"`

	// RawAnalysis is the model's unparsed analysis response, for diagnostics
	RawAnalysis string `json:"rawAnalysis"`

	// Error carries the analysis failure description on a FAILED run
	Error string `json:"error,omitempty"`
}
