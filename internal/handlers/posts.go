package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/inkwell/internal/auth"
	"github.com/inkwell/inkwell/internal/forms"
	"github.com/inkwell/inkwell/internal/models"
	"github.com/inkwell/inkwell/pkg/pagination"
)

// Index shows all posts, newest first, paginated. The route is wrapped in
// the page cache, so writes inside the cache window are not reflected
// until expiry.
func (h *Handlers) Index(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.posts.CountAll(ctx)
	if err != nil {
		h.fail(c, "counting posts", err)
		return
	}
	page := pagination.New(total, c.Query("page"))

	posts, err := h.posts.ListPage(ctx, page.Offset, page.Limit)
	if err != nil {
		h.fail(c, "listing posts", err)
		return
	}

	data := h.base(c, "Latest updates")
	data["Posts"] = posts
	data["Page"] = page
	c.HTML(http.StatusOK, "index.html", data)
}

// GroupPosts shows the posts of one group
func (h *Handlers) GroupPosts(c *gin.Context) {
	ctx := c.Request.Context()

	group, err := h.groups.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		h.fail(c, "loading group", err)
		return
	}
	if group == nil {
		h.notFound(c)
		return
	}

	total, err := h.posts.CountByGroup(ctx, group.ID)
	if err != nil {
		h.fail(c, "counting group posts", err)
		return
	}
	page := pagination.New(total, c.Query("page"))

	posts, err := h.posts.ListByGroupPage(ctx, group.ID, page.Offset, page.Limit)
	if err != nil {
		h.fail(c, "listing group posts", err)
		return
	}

	data := h.base(c, group.Title)
	data["Group"] = group
	data["Posts"] = posts
	data["Page"] = page
	c.HTML(http.StatusOK, "group_list.html", data)
}

// Profile shows an author's posts plus the viewer's follow state
func (h *Handlers) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	author, err := h.users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		h.fail(c, "loading author", err)
		return
	}
	if author == nil {
		h.notFound(c)
		return
	}

	viewer := auth.UserFrom(c)
	following := false
	showButton := false
	if viewer != nil {
		showButton = viewer.ID != author.ID
		following, err = h.follows.Exists(ctx, viewer.ID, author.ID)
		if err != nil {
			h.fail(c, "checking follow state", err)
			return
		}
	}

	total, err := h.posts.CountByAuthor(ctx, author.ID)
	if err != nil {
		h.fail(c, "counting author posts", err)
		return
	}
	page := pagination.New(total, c.Query("page"))

	posts, err := h.posts.ListByAuthorPage(ctx, author.ID, page.Offset, page.Limit)
	if err != nil {
		h.fail(c, "listing author posts", err)
		return
	}

	data := h.base(c, "Posts by "+author.Username)
	data["Author"] = author
	data["Posts"] = posts
	data["Page"] = page
	data["Following"] = following
	data["ShowFollowButton"] = showButton
	c.HTML(http.StatusOK, "profile.html", data)
}

// PostDetail shows one post with its comments and comment form
func (h *Handlers) PostDetail(c *gin.Context) {
	ctx := c.Request.Context()

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

	comments, err := h.comments.ListByPost(ctx, post.ID)
	if err != nil {
		h.fail(c, "listing comments", err)
		return
	}

	authorCount, err := h.posts.CountByAuthor(ctx, post.AuthorID)
	if err != nil {
		h.fail(c, "counting author posts", err)
		return
	}

	viewer := auth.UserFrom(c)

	data := h.base(c, post.String())
	data["Post"] = post
	data["Comments"] = comments
	data["AuthorPostCount"] = authorCount
	data["CommentForm"] = &forms.CommentForm{}
	data["CanEdit"] = viewer != nil && viewer.ID == post.AuthorID
	c.HTML(http.StatusOK, "post_detail.html", data)
}

// CreatePostForm renders the empty post form
func (h *Handlers) CreatePostForm(c *gin.Context) {
	h.renderPostForm(c, &forms.PostForm{}, false, 0)
}

// CreatePost creates a post for the requesting user and redirects to
// their profile. An invalid form re-renders with field errors.
func (h *Handlers) CreatePost(c *gin.Context) {
	ctx := c.Request.Context()
	user := auth.UserFrom(c)

	form := &forms.PostForm{
		Text:    c.PostForm("text"),
		GroupID: forms.ParseGroupID(c.PostForm("group")),
	}
	valid, err := h.validateForm(c, form)
	if err != nil {
		return
	}
	if !valid {
		h.renderPostForm(c, form, false, 0)
		return
	}

	image, err := h.saveImage(c)
	if err != nil {
		h.fail(c, "saving upload", err)
		return
	}

	post := &models.Post{
		Text:     form.CleanText(),
		Image:    image,
		AuthorID: user.ID,
		GroupID:  form.GroupID,
	}
	if err := h.posts.Create(ctx, post); err != nil {
		h.fail(c, "creating post", err)
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// EditPostForm renders the edit form, or silently redirects non-authors
// to the post detail page.
func (h *Handlers) EditPostForm(c *gin.Context) {
	post, ok := h.editablePost(c)
	if !ok {
		return
	}

	form := &forms.PostForm{
		Text:    post.Text,
		GroupID: post.GroupID,
		Image:   post.Image,
	}
	h.renderPostForm(c, form, true, post.ID)
}

// EditPost mutates an existing post. Only the author may edit; anyone
// else is redirected to the detail page without an error.
func (h *Handlers) EditPost(c *gin.Context) {
	ctx := c.Request.Context()

	post, ok := h.editablePost(c)
	if !ok {
		return
	}

	form := &forms.PostForm{
		Text:    c.PostForm("text"),
		GroupID: forms.ParseGroupID(c.PostForm("group")),
	}
	valid, err := h.validateForm(c, form)
	if err != nil {
		return
	}
	if !valid {
		h.renderPostForm(c, form, true, post.ID)
		return
	}

	image, err := h.saveImage(c)
	if err != nil {
		h.fail(c, "saving upload", err)
		return
	}
	if image != "" {
		post.Image = image
	}

	post.Text = form.CleanText()
	post.GroupID = form.GroupID
	if err := h.posts.Update(ctx, post); err != nil {
		h.fail(c, "updating post", err)
		return
	}

	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}

// editablePost loads the :id post and enforces the author-only rule.
// Unknown ids render 404; a non-author is redirected to the detail page.
func (h *Handlers) editablePost(c *gin.Context) (*models.Post, bool) {
	id, ok := paramID(c)
	if !ok {
		h.notFound(c)
		return nil, false
	}

	post, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "loading post", err)
		return nil, false
	}
	if post == nil {
		h.notFound(c)
		return nil, false
	}

	user := auth.UserFrom(c)
	if user == nil || user.ID != post.AuthorID {
		c.Redirect(http.StatusFound, postDetailPath(post.ID))
		c.Abort()
		return nil, false
	}

	return post, true
}

// validateForm runs the field rules plus the group existence check. A
// forged group id is a field error, not a storage failure. A non-nil
// error means the response has already been written.
func (h *Handlers) validateForm(c *gin.Context, form *forms.PostForm) (bool, error) {
	valid := form.Validate()

	if form.GroupID != nil {
		group, err := h.groups.GetByID(c.Request.Context(), *form.GroupID)
		if err != nil {
			h.fail(c, "checking group", err)
			return false, err
		}
		if group == nil {
			form.Errors["group"] = forms.GroupInvalidError
			valid = false
		}
	}

	return valid, nil
}

func (h *Handlers) renderPostForm(c *gin.Context, form *forms.PostForm, isEdit bool, postID uint) {
	groups, err := h.groups.List(c.Request.Context())
	if err != nil {
		h.fail(c, "listing groups", err)
		return
	}

	var selected uint
	if form.GroupID != nil {
		selected = *form.GroupID
	}

	title := "New post"
	if isEdit {
		title = "Edit post"
	}

	data := h.base(c, title)
	data["Form"] = form
	data["Groups"] = groups
	data["SelectedGroup"] = selected
	data["IsEdit"] = isEdit
	data["PostID"] = postID
	c.HTML(http.StatusOK, "create_post.html", data)
}

func postDetailPath(id uint) string {
	return "/posts/" + strconv.FormatUint(uint64(id), 10) + "/"
}
