// Package services defines the resource accessors for topics, articles,
// comments and users. This file centralizes the service-level error values
// so that they are returned consistently by service methods and can be
// checked by callers with errors.Is.
//
// Every value is a *domain.Error: its Kind decides the HTTP status and its
// Msg is the client-facing message. Translation into responses happens in
// the handler layer.
package services

import (
	"strconv"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// Validation errors (detected before any store access).
var (
	// ErrInvalidSortBy is returned when sort_by is not an allowed column.
	ErrInvalidSortBy = domain.Validation("Invalid sort_by query")

	// ErrInvalidOrder is returned when order is neither "asc" nor "desc".
	ErrInvalidOrder = domain.Validation("Invalid order query")

	// ErrMissingFields is returned when a new comment lacks username or body.
	ErrMissingFields = domain.Validation("Missing required fields")
)

// Not-found errors.
var (
	// ErrArticleNotFound is returned by article reads/updates and comment
	// creation when the article does not exist.
	ErrArticleNotFound = domain.NotFound("Not Found")

	// ErrCommentsArticleNotFound is returned when listing the comments of an
	// article that does not exist.
	ErrCommentsArticleNotFound = domain.NotFound("Article not found")

	// ErrUserNotFound is returned when a username does not exist.
	ErrUserNotFound = domain.NotFound("User not found")

	// ErrCommentNotFound is returned when deleting a comment that does not exist.
	ErrCommentNotFound = domain.NotFound("Comment not found")

	// ErrTopicNotFound is returned when filtering articles by an unknown topic.
	ErrTopicNotFound = domain.NotFound("Topic not found")
)

// parseID converts a path identifier the way an integer column would.
// Anything that is not a base-10 int64 is a store type error.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.StoreType("invalid input syntax for type integer: \""+raw+"\"", err)
	}
	return id, nil
}
