package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkwell/inkwell/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed getting sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := Migrate(gdb); err != nil {
		t.Fatalf("failed migrating schema: %v", err)
	}

	return gdb
}

func createTestUser(t *testing.T, gdb *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x"}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("failed creating user %q: %v", username, err)
	}
	return user
}

func createTestGroup(t *testing.T, gdb *gorm.DB, title, slug string) *models.Group {
	t.Helper()
	group := &models.Group{Title: title, Slug: slug, Description: title + " posts"}
	if err := gdb.Create(group).Error; err != nil {
		t.Fatalf("failed creating group %q: %v", slug, err)
	}
	return group
}

func createTestPost(t *testing.T, gdb *gorm.DB, author *models.User, text string, groupID *uint) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: author.ID, GroupID: groupID}
	if err := gdb.Create(post).Error; err != nil {
		t.Fatalf("failed creating post: %v", err)
	}
	return post
}
