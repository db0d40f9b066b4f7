package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/inkwell/internal/db"
	"github.com/inkwell/inkwell/internal/models"
)

// ContextUserKey is the gin context key holding the authenticated user.
const ContextUserKey = "current_user"

// LoginPath is where anonymous users are sent for protected routes.
const LoginPath = "/auth/login/"

// CurrentUser resolves the session cookie to a user on every request.
// Anonymous and invalid sessions pass through without a user set.
func CurrentUser(sessions *Sessions, users *db.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := sessions.Parse(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err == nil && user != nil {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// LoginRequired redirects anonymous requests to the login page with a
// next parameter pointing back at the original URL.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) == nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, LoginPath+"?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user from the gin context, or nil.
func UserFrom(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
