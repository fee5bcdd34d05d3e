package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPostID verifies the P<n> shape.
func TestNewPostID(t *testing.T) {
	id := NewPostID(1)
	assert.Equal(t, PostID("P1"), id)
	require.NoError(t, id.Validate())

	assert.Equal(t, PostID("P12"), NewPostID(12))
}

// TestPostID_Validate_Rejects verifies malformed post IDs fail validation.
func TestPostID_Validate_Rejects(t *testing.T) {
	for _, bad := range []PostID{"", "P0", "P", "p1", "C1", "P-1", "P1x"} {
		assert.Error(t, bad.Validate(), "expected %q to be invalid", bad)
	}
}

// TestNewCommentID verifies the C<n> shape and ordinal extraction.
func TestNewCommentID(t *testing.T) {
	id := NewCommentID(7)
	assert.Equal(t, CommentID("C7"), id)
	require.NoError(t, id.Validate())
	assert.Equal(t, 7, id.Ordinal())
	assert.Equal(t, 0, CommentID("bogus").Ordinal())
}

// TestCommentID_Validate_Rejects verifies malformed comment IDs fail.
func TestCommentID_Validate_Rejects(t *testing.T) {
	for _, bad := range []CommentID{"", "C0", "C", "c3", "P1"} {
		assert.Error(t, bad.Validate(), "expected %q to be invalid", bad)
	}
}
