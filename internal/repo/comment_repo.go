// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment
// model.
//
// Functions:
//
//   - ListCommentsByArticle(ctx, db, articleID) -> []domain.CommentView, error
//     Comments of one article joined with the author avatar, newest first.
//
//   - CreateComment(ctx, db, articleID, author, body) -> *domain.Comment, error
//     Inserts a comment with votes 0 and a server-side UTC timestamp.
//
//   - DeleteComment(ctx, db, id) -> error
//     Deletes by id; ErrNotFound when nothing was deleted.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListCommentsByArticle returns the comments of articleID joined with each
// author's avatar_url, ordered by created_at descending (comment_id breaks
// ties). It returns an empty slice when the article has no comments.
func ListCommentsByArticle(ctx context.Context, db *gorm.DB, articleID int64) ([]domain.CommentView, error) {
	out := []domain.CommentView{}
	err := db.WithContext(ctx).
		Table("comments").
		Select(`comments.comment_id, comments.article_id, comments.author, comments.body,
			comments.votes, comments.created_at, users.avatar_url`).
		Joins("LEFT JOIN users ON users.username = comments.author").
		Where("comments.article_id = ?", articleID).
		Order("comments.created_at DESC").
		Order("comments.comment_id DESC").
		Scan(&out).Error
	return out, err
}

// CreateComment inserts a new comment on articleID authored by author.
// Votes default to 0 and CreatedAt is set to the current UTC time.
//
// On success, it returns the persisted Comment. On failure, it returns a DB error.
func CreateComment(ctx context.Context, db *gorm.DB, articleID int64, author, body string) (*domain.Comment, error) {
	c := &domain.Comment{
		ArticleID: articleID,
		Author:    author,
		Body:      body,
		Votes:     0,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteComment removes the comment with id. If no rows are affected it
// returns ErrNotFound. On DB error, the raw error is returned.
func DeleteComment(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).
		Where("comment_id = ?", id).
		Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
