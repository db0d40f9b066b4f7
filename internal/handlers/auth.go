package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/inkwell/internal/auth"
	"github.com/inkwell/inkwell/internal/models"
)

// LoginForm renders the login page, carrying the next parameter through
// the form.
func (h *Handlers) LoginForm(c *gin.Context) {
	data := h.base(c, "Log in")
	data["Next"] = c.Query("next")
	data["Username"] = ""
	c.HTML(http.StatusOK, "login.html", data)
}

// Login checks credentials, issues the session cookie and redirects to
// the next URL (or the index).
func (h *Handlers) Login(c *gin.Context) {
	ctx := c.Request.Context()

	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.users.GetByUsername(ctx, username)
	if err != nil {
		h.fail(c, "loading user", err)
		return
	}
	if user == nil || h.passwords.Verify(user.PasswordHash, password) != nil {
		data := h.base(c, "Log in")
		data["FormError"] = "Wrong username or password."
		data["Next"] = c.PostForm("next")
		data["Username"] = username
		c.HTML(http.StatusOK, "login.html", data)
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.fail(c, "issuing session", err)
		return
	}

	c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
}

// SignupForm renders the registration page
func (h *Handlers) SignupForm(c *gin.Context) {
	data := h.base(c, "Sign up")
	data["Username"] = ""
	data["Email"] = ""
	c.HTML(http.StatusOK, "signup.html", data)
}

// Signup registers a user, logs them in and redirects to the index
func (h *Handlers) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	renderError := func(msg string) {
		data := h.base(c, "Sign up")
		data["FormError"] = msg
		data["Username"] = username
		data["Email"] = email
		c.HTML(http.StatusOK, "signup.html", data)
	}

	if username == "" || password == "" {
		renderError("Username and password are required.")
		return
	}

	existing, err := h.users.GetByUsername(ctx, username)
	if err != nil {
		h.fail(c, "checking username", err)
		return
	}
	if existing != nil {
		renderError("That username is already taken.")
		return
	}

	hash, err := h.passwords.Hash(password)
	if err != nil {
		renderError("That password cannot be used.")
		return
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	if err := h.users.Create(ctx, user); err != nil {
		h.fail(c, "creating user", err)
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.fail(c, "issuing session", err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session cookie and redirects to the index
func (h *Handlers) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) startSession(c *gin.Context, user *models.User) error {
	token, err := h.sessions.Issue(user.ID, user.Username)
	if err != nil {
		return err
	}
	c.SetCookie(auth.SessionCookie, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	return nil
}

// safeNext keeps the post-login redirect on this site
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
