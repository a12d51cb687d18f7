package domain

import "errors"

var (
	ErrInvalidContent  = errors.New("comment content must be between 1 and 1000 characters")
	ErrCommentNotFound = errors.New("invalid comment id")
	ErrNotAuthor       = errors.New("you are not the author of this comment")
	ErrBoardNotFound   = errors.New("board not found")
	ErrMemberNotFound  = errors.New("member not found")

	// ErrVersionConflict means a versioned write lost the race against a
	// concurrent writer. It is retried by the counter protocol and never
	// reaches clients on its own.
	ErrVersionConflict = errors.New("board version changed since it was loaded")
	ErrCounterConflict = errors.New("comment count update retries exhausted")
	ErrTreeIntegrity   = errors.New("comment tree integrity violation")
)
