package services

import "errors"

// Service-level failures the API layer maps onto HTTP statuses. Anything not
// listed here is a persistence failure and surfaces as a 500 for the request.
var (
	// ErrPostNotFound signals a lookup for a post that does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrCommentNotFound signals a comment lookup or parent check that missed.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrDraftNotFound signals a missing draft, including drafts owned by a
	// different member.
	ErrDraftNotFound = errors.New("draft not found")
	// ErrDailyPostLimit signals that the member already posted in this som
	// category today.
	ErrDailyPostLimit = errors.New("already posted in this category today")
)
