package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Index(c *gin.Context) {
	c.String(http.StatusOK, "Welcome! Please find API documentation- %s/index.html", h.Options.DocsPath)
}

func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "not_found",
		"message": "No route for " + c.Request.Method + " " + c.Request.URL.Path,
	})
}

// Health reports whether the upstream is usable without calling it.
func (h *Handler) Health(c *gin.Context) {
	if err := h.Service.IsAvailable(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"upstream": h.Service.Name(),
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"upstream": h.Service.Name(),
	})
}
