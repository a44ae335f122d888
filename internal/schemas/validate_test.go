package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCandidate_Valid(t *testing.T) {
	doc := `{
		"title": "Federated Learning for Clinical Trials",
		"description": "Train models across hospitals without moving data.",
		"difficulty": "Advanced",
		"duration": "6-12 months",
		"categories": ["Machine Learning", "Healthcare"],
		"relevanceReasoning": "Matches distributed systems background."
	}`
	assert.NoError(t, ValidateCandidate(doc))
}

func TestValidateCandidate_MissingRequiredFields(t *testing.T) {
	doc := `{"title": "Only a title"}`

	err := ValidateCandidate(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateCandidate_CategoriesMustBeArray(t *testing.T) {
	doc := `{
		"title": "T",
		"description": "D",
		"difficulty": "Intermediate",
		"duration": "3-6 months",
		"categories": "Research"
	}`

	err := ValidateCandidate(doc)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateCandidate_EmptyStringsRejected(t *testing.T) {
	doc := `{
		"title": "",
		"description": "D",
		"difficulty": "Intermediate",
		"duration": "3-6 months",
		"categories": []
	}`

	err := ValidateCandidate(doc)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateCandidate_MalformedJSON(t *testing.T) {
	err := ValidateCandidate(`{"title": `)
	assert.Error(t, err)
}
