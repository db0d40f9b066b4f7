package models

// Group represents a topical collection of posts
type Group struct {
	ID          uint   `gorm:"primaryKey;autoIncrement;column:id"`
	Title       string `gorm:"type:varchar(200);not null;column:title"`
	Slug        string `gorm:"type:varchar(50);not null;uniqueIndex;column:slug"`
	Description string `gorm:"type:text;column:description"`

	// Relationships
	Posts []Post `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName specifies the table name for Group
func (Group) TableName() string {
	return "groups"
}

// String renders the group as its title
func (g Group) String() string {
	return g.Title
}
