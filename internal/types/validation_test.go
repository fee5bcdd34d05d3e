package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidationResult_AddError marks the result invalid and records the
// formatted message.
func TestValidationResult_AddError(t *testing.T) {
	r := NewValidationResult()
	assert.True(t, r.Valid)

	r.AddError("subreddit %s has %d posts", "r/golang", 2)

	assert.False(t, r.Valid)
	assert.Equal(t, []string{"subreddit r/golang has 2 posts"}, r.Errors)
}

// TestValidationResult_AddWarning keeps the result valid.
func TestValidationResult_AddWarning(t *testing.T) {
	r := NewValidationResult()
	r.AddWarning("persona %s is idle", "riley_ops")

	assert.True(t, r.Valid)
	assert.Len(t, r.Warnings, 1)
}

// TestValidationResult_Merge ANDs validity and concatenates findings.
func TestValidationResult_Merge(t *testing.T) {
	a := NewValidationResult()
	a.AddWarning("w1")

	b := NewValidationResult()
	b.AddError("e1")
	b.AddWarning("w2")

	a.Merge(b)

	assert.False(t, a.Valid)
	assert.Equal(t, []string{"e1"}, a.Errors)
	assert.Equal(t, []string{"w1", "w2"}, a.Warnings)
}
