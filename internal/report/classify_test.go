package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardtable-labs/bga-cli/internal/model"
)

func TestIsTrickTaker_MatchingCategory(t *testing.T) {
	assert.True(t, IsTrickTaker([]model.Tag{{Category: 220}}))
	assert.True(t, IsTrickTaker([]model.Tag{{Category: 1}, {Category: 220}}))
}

func TestIsTrickTaker_OtherCategories(t *testing.T) {
	assert.False(t, IsTrickTaker([]model.Tag{{Category: 221}}))
	assert.False(t, IsTrickTaker([]model.Tag{{Category: 999}, {Category: 22}}))
}

func TestIsTrickTaker_NoTags(t *testing.T) {
	assert.False(t, IsTrickTaker(nil))
	assert.False(t, IsTrickTaker([]model.Tag{}))
}

func TestIsTrickTaker_IgnoresTagValue(t *testing.T) {
	// Only the category half of a tag participates.
	assert.True(t, IsTrickTaker([]model.Tag{{Category: 220, Value: json.RawMessage(`"anything"`)}}))
	assert.False(t, IsTrickTaker([]model.Tag{{Category: 30, Value: json.RawMessage(`220`)}}))
}
