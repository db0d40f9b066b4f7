package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwell/inkwell/internal/auth"
)

// base assembles the data every page template expects
func (h *Handlers) base(c *gin.Context, title string) gin.H {
	return gin.H{
		"Title": title,
		"User":  auth.UserFrom(c),
	}
}

func (h *Handlers) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.base(c, "Not found"))
	c.Abort()
}

func (h *Handlers) forbidden(c *gin.Context) {
	c.HTML(http.StatusForbidden, "403.html", h.base(c, "Forbidden"))
	c.Abort()
}

func (h *Handlers) serverError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", h.base(c, "Server error"))
	c.Abort()
}

func (h *Handlers) fail(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	h.serverError(c)
}

// paramID parses the :id route parameter; ok is false when malformed
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
