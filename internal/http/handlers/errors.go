// Error codes and the error normalizer shared by every endpoint.
//
// respondError is the single place where a failure becomes an HTTP response.
// It classifies the error with domain.Classify and picks the status, code
// and client message:
//
//	validation   -> 400 bad_request      message from the error
//	not found    -> 404 not_found        message from the error
//	store type   -> 400 bad_request      "Bad request"
//	anything else-> 500 internal_error   "Internal Server Error" (logged)
//
// Clients are expected to branch on the codes for programmatic handling.

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/http/middleware"
)

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
)

// Fixed client messages for classes whose cause must not leak.
const (
	MsgBadRequest       = "Bad request"
	MsgInternalError    = "Internal Server Error"
	MsgRouteNotFound    = "404 - request not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// respondError writes the response for err and aborts the request.
func respondError(c *gin.Context, err error) {
	var de *domain.Error
	errors.As(err, &de)

	switch domain.Classify(err) {
	case domain.KindValidation:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, de.Msg)
	case domain.KindNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, de.Msg)
	case domain.KindStoreType:
		middleware.LoggerFrom(c).Debug().Err(err).Msg("store rejected value")
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, MsgBadRequest)
	default:
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, ErrCodeInternal, MsgInternalError)
	}
}
