package analysis

import "strings"

// Recognized label prefixes in the model's structured-text response.
const (
	labelFound       = "DISASTER_FOUND:"
	labelType        = "DISASTER_TYPE:"
	labelSeverity    = "SEVERITY:"
	labelDescription = "DESCRIPTION:"
	labelActions     = "ACTIONS:"
)

// ParseAssessment extracts the labeled fields from a free-form model
// response. The format is prompt-engineered text, not a schema, so the
// parser is deliberately tolerant: unrecognized lines are ignored and
// absent labels leave the field at its default. It never fails.
func ParseAssessment(text string) Assessment {
	result := DefaultAssessment()

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, labelFound):
			if strings.Contains(line, "Yes") {
				result.Found = true
			}
		case strings.HasPrefix(line, labelType):
			result.Type = strings.TrimSpace(strings.TrimPrefix(line, labelType))
		case strings.HasPrefix(line, labelSeverity):
			result.Severity = strings.TrimSpace(strings.TrimPrefix(line, labelSeverity))
		case strings.HasPrefix(line, labelDescription):
			result.Description = strings.TrimSpace(strings.TrimPrefix(line, labelDescription))
		case strings.HasPrefix(line, labelActions):
			result.Actions = strings.TrimSpace(strings.TrimPrefix(line, labelActions))
		}
	}

	return result
}
