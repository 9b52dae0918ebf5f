// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Article
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, so callers
// decide which connection (or transaction) a query runs on. They follow the
// "thin repository" approach: no business logic, only persistence and query
// composition.
//
// Error semantics:
//   - When an article is not found, functions return ErrNotFound.
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ArticleQuery selects and orders an article listing. SortBy must already
// be an allowed column name; it is emitted as a quoted identifier, never
// spliced into SQL text.
type ArticleQuery struct {
	SortBy string
	Desc   bool
	Topic  string // optional filter
}

// ArticleRow is a raw listing row. CommentCount is scanned as text because
// SQL aggregates come back as driver-specific types; callers convert it.
type ArticleRow struct {
	ArticleID     int64     `gorm:"column:article_id"`
	Title         string    `gorm:"column:title"`
	Topic         string    `gorm:"column:topic"`
	Author        string    `gorm:"column:author"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	Votes         int64     `gorm:"column:votes"`
	ArticleImgURL string    `gorm:"column:article_img_url"`
	CommentCount  string    `gorm:"column:comment_count"`
}

// GetArticle fetches a single article by id, or ErrNotFound.
func GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error) {
	var a domain.Article
	err := db.WithContext(ctx).
		Where("article_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ArticleExists reports whether an article with id exists.
func ArticleExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}

// ListArticles returns articles left-joined with an aggregate count of their
// comments, ordered by q.SortBy then article_id in the same direction.
// The body column is never selected.
func ListArticles(ctx context.Context, db *gorm.DB, q ArticleQuery) ([]ArticleRow, error) {
	tx := db.WithContext(ctx).
		Table("articles").
		Select(`articles.article_id, articles.title, articles.topic, articles.author,
			articles.created_at, articles.votes, articles.article_img_url,
			COUNT(comments.comment_id) AS comment_count`).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id")
	if q.Topic != "" {
		tx = tx.Where("articles.topic = ?", q.Topic)
	}
	var out []ArticleRow
	err := tx.
		Group("articles.article_id").
		Order(clause.OrderByColumn{Column: clause.Column{Table: "articles", Name: q.SortBy}, Desc: q.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "articles", Name: "article_id"}, Desc: q.Desc}).
		Scan(&out).Error
	return out, err
}

// IncrementArticleVotes adds delta to the article's votes in a single
// UPDATE ... RETURNING (votes = votes + delta), so the row returned is the
// one this statement produced. It returns ErrNotFound when no row matched.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, id, delta int64) (*domain.Article, error) {
	var a domain.Article
	res := db.WithContext(ctx).
		Model(&a).
		Clauses(clause.Returning{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &a, nil
}
