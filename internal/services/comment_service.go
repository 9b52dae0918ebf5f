// Package services – CommentService
//
// This file implements the comment accessors. Creation checks, in order,
// that the payload is complete, that the article exists and that the author
// exists, so the client gets the most specific message for what is wrong.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// NewComment is the payload for CommentService.Create.
type NewComment struct {
	Username string
	Body     string
}

// CommentService implements the comment use-cases.
type CommentService struct {
	DB *gorm.DB
}

// NewCommentService constructs a CommentService bound to db.
func NewCommentService(db *gorm.DB) *CommentService { return &CommentService{DB: db} }

// ListByArticle returns the comments of an article, newest first, each with
// the author's avatar. An article without comments yields an empty list.
func (s *CommentService) ListByArticle(ctx context.Context, rawArticleID string) (out []domain.CommentView, err error) {
	ctx, span := tracer.Start(ctx, "CommentService.ListByArticle")
	defer func() { endSpan(span, err) }()

	id, err := parseID(rawArticleID)
	if err != nil {
		return nil, err
	}
	ok, err := repo.ArticleExists(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCommentsArticleNotFound
	}
	return repo.ListCommentsByArticle(ctx, s.DB, id)
}

// Create inserts a comment on an article with votes 0 and a server-side
// timestamp, and returns the stored row.
func (s *CommentService) Create(ctx context.Context, rawArticleID string, in NewComment) (c *domain.Comment, err error) {
	ctx, span := tracer.Start(ctx, "CommentService.Create")
	defer func() { endSpan(span, err) }()

	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Body) == "" {
		return nil, ErrMissingFields
	}
	id, err := parseID(rawArticleID)
	if err != nil {
		return nil, err
	}

	ok, err := repo.ArticleExists(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrArticleNotFound
	}
	ok, err = repo.UserExists(ctx, s.DB, in.Username)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	return repo.CreateComment(ctx, s.DB, id, in.Username, in.Body)
}

// Delete removes a comment, or returns ErrCommentNotFound when none matched.
func (s *CommentService) Delete(ctx context.Context, rawCommentID string) (err error) {
	ctx, span := tracer.Start(ctx, "CommentService.Delete")
	defer func() { endSpan(span, err) }()

	id, err := parseID(rawCommentID)
	if err != nil {
		return err
	}
	err = repo.DeleteComment(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrCommentNotFound
	}
	return err
}
