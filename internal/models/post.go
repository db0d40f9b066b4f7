package models

import (
	"time"
)

// snippetLen bounds the String rendering of user text.
const snippetLen = 15

// Post represents a text entry authored by a user, optionally tagged to a
// group and carrying an image.
type Post struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id"`
	Text      string    `gorm:"type:text;not null;column:text"`
	CreatedAt time.Time `gorm:"not null;<-:create;column:created_at"`
	Image     string    `gorm:"type:varchar(255);column:image"`
	AuthorID  uint      `gorm:"not null;index;column:author_id"`
	GroupID   *uint     `gorm:"index;column:group_id"`

	// Relationships
	Author   *User     `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Group    *Group    `gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:SET NULL"`
	Comments []Comment `gorm:"foreignKey:PostID;references:ID"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// String renders the post as its text truncated to 15 runes
func (p Post) String() string {
	return snippet(p.Text)
}

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLen {
		return text
	}
	return string(runes[:snippetLen])
}
