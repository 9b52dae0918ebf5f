// Package handlers exposes the REST endpoints for topics, articles, comments
// and users. Handlers are transport-thin: they read path, query and body
// values, call the services and shape the JSON response. Successful
// payloads sit under a named key ({"article": ...}, {"comments": [...]}).
// Every failure goes through respondError and shares one envelope:
//
//	HTTP/1.1 404 Not Found
//	{"request_id": "123e4567-e89b-12d3-a456-426614174000", "code": "not_found", "msg": "User not found"}
package handlers

import (
	"context"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// TopicService lists topics.
type TopicService interface {
	List(ctx context.Context) ([]domain.Topic, error)
}

// ArticleService reads articles and adjusts their votes.
//
// Implementations must honor the provided context for cancellation and
// timeouts, and report failures as *domain.Error where the cause is known.
type ArticleService interface {
	// Get returns one article by its raw path id.
	Get(ctx context.Context, id string) (*domain.Article, error)
	// List returns article summaries sorted and filtered by p.
	List(ctx context.Context, p services.ListArticlesParams) ([]domain.ArticleSummary, error)
	// UpdateVotes adds incVotes to the article's votes.
	UpdateVotes(ctx context.Context, id string, incVotes int) (*domain.Article, error)
}

// CommentService reads, creates and deletes comments.
type CommentService interface {
	ListByArticle(ctx context.Context, articleID string) ([]domain.CommentView, error)
	Create(ctx context.Context, articleID string, in services.NewComment) (*domain.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

// UserService reads user profiles.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints. It depends on the service interfaces
// only, so tests can substitute stubs.
type Handlers struct {
	topicSvc   TopicService
	articleSvc ArticleService
	commentSvc CommentService
	userSvc    UserService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(topics TopicService, articles ArticleService, comments CommentService, users UserService) *Handlers {
	return &Handlers{
		topicSvc:   topics,
		articleSvc: articles,
		commentSvc: comments,
		userSvc:    users,
	}
}

//
// DTOs
//

// TopicsResponse wraps the topic list.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// ArticlesResponse wraps an article listing.
type ArticlesResponse struct {
	Articles []domain.ArticleSummary `json:"articles"`
}

// ArticleResponse wraps a single article.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// CommentsResponse wraps the comments of an article.
type CommentsResponse struct {
	Comments []domain.CommentView `json:"comments"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// UsersResponse wraps the user list.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User *domain.User `json:"user"`
}

// UpdateVotesRequest is the JSON payload for PATCH /articles/{article_id}.
type UpdateVotesRequest struct {
	// IncVotes is a signed delta; a pointer so that 0 is accepted but absence is not.
	IncVotes *int `json:"inc_votes" binding:"required" example:"1"`
}

// CreateCommentRequest is the JSON payload for POST /articles/{article_id}/comments.
type CreateCommentRequest struct {
	Username string `json:"username" binding:"required" example:"lurker"`
	Body     string `json:"body"     binding:"required" example:"first!"`
}
