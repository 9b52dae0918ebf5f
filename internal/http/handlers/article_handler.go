// Article HTTP handlers.
//
// This file exposes REST endpoints for article resources:
//   - GET    /articles                (list, sort_by/order/topic)
//   - GET    /articles/{article_id}   (single article with body)
//   - PATCH  /articles/{article_id}   (adjust votes)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/services"
)

// MsgIncVotesInteger is returned when the PATCH body lacks an integer inc_votes.
const MsgIncVotesInteger = "inc_votes must be an integer"

// ListArticles godoc
// @ID          listArticles
// @Summary     List articles
// @Description Returns all articles without bodies, each with comment_count.
// @Tags        Articles
// @Produce     json
//
// @Param       sort_by  query  string  false  "Sort column"        Enums(author, title, article_id, topic, created_at, votes, article_img_url) default(created_at)
// @Param       order    query  string  false  "Sort direction"     Enums(asc, desc) default(desc)
// @Param       topic    query  string  false  "Topic slug filter"  example(cats)
//
// @Success     200  {object}  handlers.ArticlesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid sort_by or order"
// @Failure     404  {object}  handlers.ErrorResponse  "Topic not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	articles, err := h.articleSvc.List(c.Request.Context(), services.ListArticlesParams{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Topic:  c.Query("topic"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{Articles: articles})
}

// GetArticle godoc
// @ID          getArticle
// @Summary     Get an article
// @Tags        Articles
// @Produce     json
// @Param       article_id  path  int  true  "Article ID"  example(1)
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not Found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	a, err := h.articleSvc.Get(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// UpdateArticleVotes godoc
// @ID          updateArticleVotes
// @Summary     Adjust article votes
// @Description Adds inc_votes (which may be negative) to the article's votes.
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       article_id  path  int                          true  "Article ID"  example(1)
// @Param       body        body  handlers.UpdateVotesRequest  true  "Vote delta"
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not Found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id} [patch]
func (h *Handlers) UpdateArticleVotes(c *gin.Context) {
	var req UpdateVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		respondError(c, domain.Validation(MsgIncVotesInteger))
		return
	}

	a, err := h.articleSvc.UpdateVotes(c.Request.Context(), c.Param("article_id"), *req.IncVotes)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}
