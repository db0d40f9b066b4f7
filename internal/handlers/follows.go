package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/inkwell/internal/auth"
	"github.com/inkwell/inkwell/internal/db"
	"github.com/inkwell/inkwell/internal/forms"
	"github.com/inkwell/inkwell/internal/models"
	"github.com/inkwell/inkwell/pkg/pagination"
)

// AddComment attaches a comment to a post and redirects to the detail
// page. An invalid form is not persisted but still redirects; the
// validation error is deliberately not surfaced on this path.
func (h *Handlers) AddComment(c *gin.Context) {
	ctx := c.Request.Context()
	user := auth.UserFrom(c)

	id, ok := paramID(c)
	if !ok {
		h.notFound(c)
		return
	}

	post, err := h.posts.GetByID(ctx, id)
	if err != nil {
		h.fail(c, "loading post", err)
		return
	}
	if post == nil {
		h.notFound(c)
		return
	}

	form := &forms.CommentForm{Text: c.PostForm("text")}
	if form.Validate() {
		comment := &models.Comment{
			PostID:   post.ID,
			AuthorID: user.ID,
			Text:     form.CleanText(),
		}
		if err := h.comments.Create(ctx, comment); err != nil {
			h.fail(c, "creating comment", err)
			return
		}
	}

	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}

// FollowIndex shows the requesting user's feed: posts by followed
// authors, newest first, paginated.
func (h *Handlers) FollowIndex(c *gin.Context) {
	ctx := c.Request.Context()
	user := auth.UserFrom(c)

	total, err := h.posts.CountFeed(ctx, user.ID)
	if err != nil {
		h.fail(c, "counting feed", err)
		return
	}
	page := pagination.New(total, c.Query("page"))

	posts, err := h.posts.ListFeedPage(ctx, user.ID, page.Offset, page.Limit)
	if err != nil {
		h.fail(c, "listing feed", err)
		return
	}

	data := h.base(c, "Your feed")
	data["Posts"] = posts
	data["Page"] = page
	c.HTML(http.StatusOK, "follow.html", data)
}

// ProfileFollow subscribes the requesting user to an author. Following
// is idempotent and a self-follow is silently refused; either way the
// user lands back on the author's profile.
func (h *Handlers) ProfileFollow(c *gin.Context) {
	ctx := c.Request.Context()
	user := auth.UserFrom(c)

	author, err := h.users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		h.fail(c, "loading author", err)
		return
	}
	if author == nil {
		h.notFound(c)
		return
	}

	if err := h.follows.Follow(ctx, user.ID, author.ID); err != nil && !errors.Is(err, db.ErrSelfFollow) {
		h.fail(c, "creating follow", err)
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

// ProfileUnfollow removes the subscription. Unfollowing an author that
// was never followed is reported as not found.
func (h *Handlers) ProfileUnfollow(c *gin.Context) {
	ctx := c.Request.Context()
	user := auth.UserFrom(c)

	author, err := h.users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		h.fail(c, "loading author", err)
		return
	}
	if author == nil {
		h.notFound(c)
		return
	}

	if err := h.follows.Unfollow(ctx, user.ID, author.ID); err != nil {
		if errors.Is(err, db.ErrNotFollowing) {
			h.notFound(c)
			return
		}
		h.fail(c, "removing follow", err)
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
