package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	corsExposed = []string{"X-Request-ID", "Content-Length", "Retry-After"}
)

// corsHandlers returns the CORS chain. With no origins configured the API
// is public: every response carries "Access-Control-Allow-Origin: *", with
// or without an Origin header. Otherwise only listed origins are echoed
// and cross-origin requests from anywhere else are refused.
func corsHandlers(origins []string) []gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  corsMethods,
		AllowHeaders:  corsHeaders,
		ExposeHeaders: corsExposed,
		MaxAge:        12 * time.Hour,
	}
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
		return []gin.HandlerFunc{cors.New(cfg)}
	}

	cfg.AllowAllOrigins = true
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Next()
		},
		cors.New(cfg),
	}
}
