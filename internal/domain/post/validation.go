package post

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxContentLength is the content limit in characters, not bytes.
const MaxContentLength = 500

// ValidateContent checks the [1,500] character bound on post content.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentEmpty
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

// ValidatePostDate checks that the post date is a usable instant.
func ValidatePostDate(postDate time.Time) error {
	if postDate.IsZero() {
		return ErrInvalidPostDate
	}
	return nil
}

// ValidateCreateInput validates fields required to create a post.
func ValidateCreateInput(req CreateRequest) error {
	if err := ValidateContent(req.Content); err != nil {
		return err
	}
	return ValidatePostDate(req.PostDate)
}

// ValidateEditInput validates the fields an edit request carries.
func ValidateEditInput(req EditRequest) error {
	if req.ID == "" {
		return ErrInvalidInput
	}
	if req.Content != nil {
		if err := ValidateContent(*req.Content); err != nil {
			return err
		}
	}
	if req.PostDate != nil {
		if err := ValidatePostDate(*req.PostDate); err != nil {
			return err
		}
	}
	return nil
}
