package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell/inkwell/internal/models"
)

// FollowRepository provides follow-related database operations
type FollowRepository struct {
	*Repository
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(repo *Repository) *FollowRepository {
	return &FollowRepository{Repository: repo}
}

// Exists reports whether user already follows author
func (r *FollowRepository) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}

// Follow creates the subscription if it does not already exist. Following
// oneself is refused with ErrSelfFollow before the storage constraint
// would fire; following the same author twice is a no-op.
func (r *FollowRepository) Follow(ctx context.Context, userID, authorID uint) error {
	if userID == authorID {
		return ErrSelfFollow
	}

	var existing models.Follow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	follow := &models.Follow{UserID: userID, AuthorID: authorID}
	return r.db.WithContext(ctx).Create(follow).Error
}

// Unfollow removes the subscription. Unfollowing an author that was never
// followed returns ErrNotFollowing.
func (r *FollowRepository) Unfollow(ctx context.Context, userID, authorID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFollowing
	}
	return nil
}

// CountFollowing returns how many authors the user follows
func (r *FollowRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountFollowers returns how many users follow the author
func (r *FollowRepository) CountFollowers(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
