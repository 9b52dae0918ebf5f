package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/docs"
)

// EndpointsResponse wraps the static endpoints document.
type EndpointsResponse struct {
	Endpoints json.RawMessage `json:"endpoints" swaggertype:"object"`
}

// GetEndpoints godoc
// @ID          getEndpoints
// @Summary     Describe the API
// @Description Serves the static JSON document describing every endpoint.
// @Tags        Meta
// @Produce     json
// @Success     200  {object}  handlers.EndpointsResponse
// @Router      / [get]
func (h *Handlers) GetEndpoints(c *gin.Context) {
	ok(c, http.StatusOK, EndpointsResponse{Endpoints: json.RawMessage(docs.Endpoints)})
}
