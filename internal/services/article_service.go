// Package services – ArticleService
//
// This file implements the article accessors: fetching one article, listing
// articles with their comment counts, and adjusting votes. Query parameters
// are validated against fixed allow-lists before any SQL is issued, so the
// sort column never reaches the store unless it is a known column name.
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

const (
	defaultSortBy = "created_at"
	defaultOrder  = "desc"
)

// sortableColumns is the allow-list for ListArticlesParams.SortBy.
var sortableColumns = map[string]struct{}{
	"author":          {},
	"title":           {},
	"article_id":      {},
	"topic":           {},
	"created_at":      {},
	"votes":           {},
	"article_img_url": {},
}

// ListArticlesParams carries the raw listing query. Empty fields take their
// defaults (created_at, desc, no topic filter).
type ListArticlesParams struct {
	SortBy string
	Order  string
	Topic  string
}

// ArticleService implements the article use-cases.
type ArticleService struct {
	DB *gorm.DB
}

// NewArticleService constructs an ArticleService bound to db.
func NewArticleService(db *gorm.DB) *ArticleService { return &ArticleService{DB: db} }

// Get returns the article identified by rawID including its body.
// A non-integer id is a store type error; a missing row is ErrArticleNotFound.
func (s *ArticleService) Get(ctx context.Context, rawID string) (a *domain.Article, err error) {
	ctx, span := tracer.Start(ctx, "ArticleService.Get")
	defer func() { endSpan(span, err) }()

	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	a, err = repo.GetArticle(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrArticleNotFound
	}
	return a, err
}

// List returns article summaries (no body) with comment_count, ordered by
// SortBy then article_id. An unknown topic yields ErrTopicNotFound; a known
// topic without articles yields an empty list.
func (s *ArticleService) List(ctx context.Context, p ListArticlesParams) (out []domain.ArticleSummary, err error) {
	ctx, span := tracer.Start(ctx, "ArticleService.List")
	defer func() { endSpan(span, err) }()

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	if _, ok := sortableColumns[sortBy]; !ok {
		return nil, ErrInvalidSortBy
	}
	order := p.Order
	if order == "" {
		order = defaultOrder
	}
	if order != "asc" && order != "desc" {
		return nil, ErrInvalidOrder
	}

	rows, err := repo.ListArticles(ctx, s.DB, repo.ArticleQuery{
		SortBy: sortBy,
		Desc:   order == "desc",
		Topic:  p.Topic,
	})
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 && p.Topic != "" {
		ok, err := repo.TopicExists(ctx, s.DB, p.Topic)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrTopicNotFound
		}
	}

	out = make([]domain.ArticleSummary, 0, len(rows))
	for _, r := range rows {
		n, err := strconv.Atoi(r.CommentCount)
		if err != nil {
			return nil, fmt.Errorf("article %d: comment_count %q: %w", r.ArticleID, r.CommentCount, err)
		}
		out = append(out, domain.ArticleSummary{
			ArticleID:     r.ArticleID,
			Title:         r.Title,
			Topic:         r.Topic,
			Author:        r.Author,
			CreatedAt:     r.CreatedAt,
			Votes:         r.Votes,
			ArticleImgURL: r.ArticleImgURL,
			CommentCount:  n,
		})
	}
	return out, nil
}

// UpdateVotes adds incVotes (which may be negative) to the article's votes
// in a single statement and returns the updated article.
func (s *ArticleService) UpdateVotes(ctx context.Context, rawID string, incVotes int) (a *domain.Article, err error) {
	ctx, span := tracer.Start(ctx, "ArticleService.UpdateVotes")
	defer func() { endSpan(span, err) }()

	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	a, err = repo.IncrementArticleVotes(ctx, s.DB, id, int64(incVotes))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrArticleNotFound
	}
	return a, err
}
