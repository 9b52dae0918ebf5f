// Comment HTTP handlers.
//
// This file exposes REST endpoints for comment resources:
//   - GET    /articles/{article_id}/comments
//   - POST   /articles/{article_id}/comments
//   - DELETE /comments/{comment_id}
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/services"
)

// MsgInvalidBody is returned when a comment payload is not a JSON object of
// string fields.
const MsgInvalidBody = "Invalid request body"

// ListArticleComments godoc
// @ID          listArticleComments
// @Summary     List comments of an article
// @Description Newest first; an article with no comments yields an empty list.
// @Tags        Comments
// @Produce     json
// @Param       article_id  path  int  true  "Article ID"  example(1)
// @Success     200  {object}  handlers.CommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id}/comments [get]
func (h *Handlers) ListArticleComments(c *gin.Context) {
	comments, err := h.commentSvc.ListByArticle(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, CommentsResponse{Comments: comments})
}

// CreateComment godoc
// @ID          createComment
// @Summary     Post a comment
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       article_id  path  int                            true  "Article ID"  example(2)
// @Param       body        body  handlers.CreateCommentRequest  true  "New comment"
// @Success     201  {object}  handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing required fields or invalid request body"
// @Failure     404  {object}  handlers.ErrorResponse  "Article or user not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id}/comments [post]
func (h *Handlers) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, commentBindError(err))
		return
	}

	cm, err := h.commentSvc.Create(c.Request.Context(), c.Param("article_id"), services.NewComment{
		Username: req.Username,
		Body:     req.Body,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, CommentResponse{Comment: cm})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Tags        Comments
// @Param       comment_id  path  int  true  "Comment ID"  example(1)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	if err := h.commentSvc.Delete(c.Request.Context(), c.Param("comment_id")); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}

// commentBindError separates absent fields from a body that could not be
// decoded. An empty body counts as every field missing.
func commentBindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) || errors.Is(err, io.EOF) {
		return services.ErrMissingFields
	}
	return domain.Validation(MsgInvalidBody)
}
