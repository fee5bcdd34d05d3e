package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	postIDPattern    = regexp.MustCompile(`^P[1-9][0-9]*$`)
	commentIDPattern = regexp.MustCompile(`^C[1-9][0-9]*$`)
)

// PostID is the synthetic identifier of a generated post ("P1", "P2", ...).
// IDs are 1-based and stable within a single planning run.
type PostID string

// NewPostID returns the PostID for the 1-based post number n.
func NewPostID(n int) PostID {
	return PostID("P" + strconv.Itoa(n))
}

// String returns the string representation of the PostID.
func (id PostID) String() string {
	return string(id)
}

// IsZero reports whether the ID is empty.
func (id PostID) IsZero() bool {
	return id == ""
}

// Validate checks that the ID matches the P<n> shape.
func (id PostID) Validate() error {
	if id == "" {
		return fmt.Errorf("post ID cannot be empty")
	}
	if !postIDPattern.MatchString(string(id)) {
		return fmt.Errorf("invalid post ID %q: want P<n> with n >= 1", id)
	}
	return nil
}

// CommentID is the synthetic identifier of a generated comment ("C1", "C2", ...).
// The counter is run-scoped and shared across all posts, so comment IDs are
// unique within a run and never reused between posts.
type CommentID string

// NewCommentID returns the CommentID for the 1-based comment number n.
func NewCommentID(n int) CommentID {
	return CommentID("C" + strconv.Itoa(n))
}

// String returns the string representation of the CommentID.
func (id CommentID) String() string {
	return string(id)
}

// IsZero reports whether the ID is empty.
func (id CommentID) IsZero() bool {
	return id == ""
}

// Validate checks that the ID matches the C<n> shape.
func (id CommentID) Validate() error {
	if id == "" {
		return fmt.Errorf("comment ID cannot be empty")
	}
	if !commentIDPattern.MatchString(string(id)) {
		return fmt.Errorf("invalid comment ID %q: want C<n> with n >= 1", id)
	}
	return nil
}

// Ordinal returns the numeric part of the comment ID, or 0 if malformed.
func (id CommentID) Ordinal() int {
	n, err := strconv.Atoi(strings.TrimPrefix(string(id), "C"))
	if err != nil {
		return 0
	}
	return n
}
