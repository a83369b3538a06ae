package post

import "errors"

var (
	// ErrPostNotFound indicates the post doesn't exist in the canonical collection.
	ErrPostNotFound = errors.New("post not found")
	// ErrContentEmpty indicates the post content is empty or whitespace-only.
	ErrContentEmpty = errors.New("post content must not be empty")
	// ErrContentTooLong indicates the post content exceeds the length limit.
	ErrContentTooLong = errors.New("post content exceeds 500 characters")
	// ErrInvalidPostDate indicates the post date is not a valid instant.
	ErrInvalidPostDate = errors.New("post date must be a valid instant")
	// ErrInvalidInput indicates invalid input for post operations.
	ErrInvalidInput = errors.New("invalid post input")
)
