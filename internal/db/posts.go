package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell/inkwell/internal/models"
)

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// GetByID retrieves a post by ID with its author and group
func (r *PostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Update persists changes to an existing post. The creation timestamp is
// immutable and never rewritten.
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Model(post).
		Select("text", "image", "group_id").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"image":    post.Image,
			"group_id": post.GroupID,
		}).Error
}

// Delete removes a post together with its comments
func (r *PostRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// CountAll returns the total number of posts
func (r *PostRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error
	return count, err
}

// ListPage returns one page of all posts, newest first
func (r *PostRepository) ListPage(ctx context.Context, offset, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.listQuery(ctx).
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountByGroup returns the number of posts in a group
func (r *PostRepository) CountByGroup(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// ListByGroupPage returns one page of a group's posts, newest first
func (r *PostRepository) ListByGroupPage(ctx context.Context, groupID uint, offset, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.listQuery(ctx).
		Where("group_id = ?", groupID).
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountByAuthor returns the number of posts written by an author
func (r *PostRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// ListByAuthorPage returns one page of an author's posts, newest first
func (r *PostRepository) ListByAuthorPage(ctx context.Context, authorID uint, offset, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.listQuery(ctx).
		Where("author_id = ?", authorID).
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountFeed returns the number of posts by authors the user follows
func (r *PostRepository) CountFeed(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ListFeedPage returns one page of posts by authors the user follows,
// newest first
func (r *PostRepository) ListFeedPage(ctx context.Context, userID uint, offset, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.listQuery(ctx).
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// listQuery is the shared listing shape: author and group preloaded,
// newest first with id as tiebreaker.
func (r *PostRepository) listQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Post{}).
		Preload("Author").Preload("Group").
		Order("posts.created_at DESC, posts.id DESC")
}

// CommentRepository provides comment-related database operations
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// ListByPost returns a post's comments with their authors, oldest first
func (r *CommentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
