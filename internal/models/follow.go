package models

import (
	"fmt"
	"time"
)

// Follow represents a directed subscription from one user to an author.
// The (user, author) pair is unique and a user cannot follow themselves;
// both rules are also enforced at the storage layer as a backstop.
type Follow struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_follows_user_author;column:user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follows_user_author;check:chk_no_self_follow,user_id <> author_id;column:author_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`

	// Relationships
	User   *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Author *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Follow
func (Follow) TableName() string {
	return "follows"
}

// String renders the subscription direction
func (f Follow) String() string {
	return fmt.Sprintf("user %d follows author %d", f.UserID, f.AuthorID)
}
