package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AboutAuthor renders the static about-the-author page
func (h *Handlers) AboutAuthor(c *gin.Context) {
	c.HTML(http.StatusOK, "about_author.html", h.base(c, "About the author"))
}

// AboutTech renders the static technology page
func (h *Handlers) AboutTech(c *gin.Context) {
	c.HTML(http.StatusOK, "about_tech.html", h.base(c, "Technology"))
}
