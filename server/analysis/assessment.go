package analysis

// Default field values used when the model response omits or mangles a label.
const (
	DefaultType        = "Unknown"
	DefaultSeverity    = "Low"
	DefaultDescription = "No specific information available"
	DefaultActions     = "Stay alert and follow local news"
)

// Assessment is the parsed outcome of one disaster analysis. Every field is
// always populated; parsing degrades to the documented defaults per-field
// instead of failing.
type Assessment struct {
	// Found indicates whether the model reported a disaster
	Found bool `json:"found"`

	// Type is the disaster type (e.g. "Flood")
	Type string `json:"type"`

	// Severity is the reported severity level (Low/Medium/High)
	Severity string `json:"severity"`

	// Description is a brief description of the situation
	Description string `json:"description"`

	// Actions is the recommended course of action
	Actions string `json:"actions"`
}

// DefaultAssessment returns an assessment with every field at its default.
func DefaultAssessment() Assessment {
	return Assessment{
		Found:       false,
		Type:        DefaultType,
		Severity:    DefaultSeverity,
		Description: DefaultDescription,
		Actions:     DefaultActions,
	}
}
