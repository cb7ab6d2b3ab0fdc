package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssessment_AllDefaults(t *testing.T) {
	inputs := []string{
		"",
		"The model decided to ramble instead of following the format.",
		"found: yes\nseverity: high", // labels are case-sensitive
	}

	for _, input := range inputs {
		result := ParseAssessment(input)

		assert.False(t, result.Found)
		assert.Equal(t, DefaultType, result.Type)
		assert.Equal(t, DefaultSeverity, result.Severity)
		assert.Equal(t, DefaultDescription, result.Description)
		assert.Equal(t, DefaultActions, result.Actions)
	}
}

func TestParseAssessment_ExtractsFields(t *testing.T) {
	input := "DISASTER_FOUND: Yes\nDISASTER_TYPE: Flood\nSEVERITY: High\nDESCRIPTION: Rising river\nACTIONS: Evacuate"

	result := ParseAssessment(input)

	assert.True(t, result.Found)
	assert.Equal(t, "Flood", result.Type)
	assert.Equal(t, "High", result.Severity)
	assert.Equal(t, "Rising river", result.Description)
	assert.Equal(t, "Evacuate", result.Actions)
}

func TestParseAssessment_NoMatch(t *testing.T) {
	result := ParseAssessment("DISASTER_FOUND: No\nDISASTER_TYPE: None")

	assert.False(t, result.Found)
	assert.Equal(t, "None", result.Type)
}

func TestParseAssessment_IndentedLines(t *testing.T) {
	// Model responses often indent the labeled lines; they still match
	input := "  DISASTER_FOUND: Yes\n\t DISASTER_TYPE: Wildfire  "

	result := ParseAssessment(input)

	assert.True(t, result.Found)
	assert.Equal(t, "Wildfire", result.Type)
}

func TestParseAssessment_PartialResponse(t *testing.T) {
	// Missing labels leave their defaults in place
	result := ParseAssessment("SEVERITY: Medium")

	assert.False(t, result.Found)
	assert.Equal(t, "Medium", result.Severity)
	assert.Equal(t, DefaultType, result.Type)
	assert.Equal(t, DefaultDescription, result.Description)
}

func TestParseAssessment_FoundIsSticky(t *testing.T) {
	// A later DISASTER_FOUND line without "Yes" does not reset the flag
	result := ParseAssessment("DISASTER_FOUND: Yes\nDISASTER_FOUND: No")

	assert.True(t, result.Found)
}

func TestParseAssessment_CaseSensitiveYes(t *testing.T) {
	result := ParseAssessment("DISASTER_FOUND: yes")

	assert.False(t, result.Found)
}
