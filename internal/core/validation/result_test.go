package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swapsdesk/tradebook/internal/core/validation"
)

func TestValidationResult_EmptyIsValid(t *testing.T) {
	result := validation.NewValidationResult()

	assert.True(t, result.IsValid())
	assert.Empty(t, result.Errors())
}

func TestValidationResult_AddErrorAppends(t *testing.T) {
	result := validation.NewValidationResult()

	result.AddError("tradeDate", "first message")
	result.AddError("tradeDate", "second message")
	result.AddError("book", "another field")

	assert.False(t, result.IsValid())
	assert.Equal(t, []string{"first message", "second message"}, result.Errors()["tradeDate"])
	assert.Equal(t, []string{"another field"}, result.Errors()["book"])
}

func TestValidationResult_AddMultipleErrorsMerges(t *testing.T) {
	result := validation.NewValidationResult()
	result.AddError("tradeLegs", "existing message")

	result.AddMultipleErrors(map[string][]string{
		"tradeLegs": {"merged message"},
		"tradeDate": {"new field"},
	})

	assert.Equal(t, []string{"existing message", "merged message"}, result.Errors()["tradeLegs"])
	assert.Equal(t, []string{"new field"}, result.Errors()["tradeDate"])
}
