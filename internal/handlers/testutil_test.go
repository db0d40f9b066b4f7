package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkwell/inkwell/internal/auth"
	"github.com/inkwell/inkwell/internal/cache"
	"github.com/inkwell/inkwell/internal/db"
	"github.com/inkwell/inkwell/internal/models"
	"github.com/inkwell/inkwell/pkg/config"
)

const testPassword = "correct-horse"

type testApp struct {
	t        *testing.T
	handlers *Handlers
	router   *gin.Engine
	db       *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	// :memory: databases are per-connection
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}

	cfg := &config.Config{
		Media:     config.MediaConfig{Root: t.TempDir()},
		Auth:      config.AuthConfig{JWTSecret: "test-secret", SessionTTL: time.Hour},
		Cache:     config.CacheConfig{IndexTTL: 20 * time.Second},
		RateLimit: config.RateLimitConfig{PerMinute: 1000},
	}

	h := New(database, cache.NewMemoryStore(), auth.NewPasswordServiceWithCost(bcrypt.MinCost), cfg)
	return &testApp{t: t, handlers: h, router: h.Router(), db: database}
}

func (a *testApp) createUser(username string) *models.User {
	a.t.Helper()
	hash, err := a.handlers.passwords.Hash(testPassword)
	if err != nil {
		a.t.Fatalf("hashing password: %v", err)
	}
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
	}
	if err := a.db.Create(user).Error; err != nil {
		a.t.Fatalf("creating user %q: %v", username, err)
	}
	return user
}

func (a *testApp) createGroup(slug, title string) *models.Group {
	a.t.Helper()
	group := &models.Group{Slug: slug, Title: title, Description: title + " description"}
	if err := a.db.Create(group).Error; err != nil {
		a.t.Fatalf("creating group %q: %v", slug, err)
	}
	return group
}

func (a *testApp) createPost(author *models.User, text string, group *models.Group) *models.Post {
	a.t.Helper()
	post := &models.Post{Text: text, AuthorID: author.ID}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := a.db.Create(post).Error; err != nil {
		a.t.Fatalf("creating post: %v", err)
	}
	return post
}

// get performs a GET request, optionally authenticated as user.
func (a *testApp) get(path string, user *models.User) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	a.attachSession(req, user)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// postForm performs a form-encoded POST request, optionally authenticated.
func (a *testApp) postForm(path string, form url.Values, user *models.User) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	a.attachSession(req, user)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) attachSession(req *http.Request, user *models.User) {
	a.t.Helper()
	if user == nil {
		return
	}
	token, err := a.handlers.Sessions().Issue(user.ID, user.Username)
	if err != nil {
		a.t.Fatalf("issuing session: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
}

func (a *testApp) countPosts() int64 {
	a.t.Helper()
	var n int64
	if err := a.db.Model(&models.Post{}).Count(&n).Error; err != nil {
		a.t.Fatalf("counting posts: %v", err)
	}
	return n
}

func (a *testApp) countComments() int64 {
	a.t.Helper()
	var n int64
	if err := a.db.Model(&models.Comment{}).Count(&n).Error; err != nil {
		a.t.Fatalf("counting comments: %v", err)
	}
	return n
}

func (a *testApp) countFollows() int64 {
	a.t.Helper()
	var n int64
	if err := a.db.Model(&models.Follow{}).Count(&n).Error; err != nil {
		a.t.Fatalf("counting follows: %v", err)
	}
	return n
}

func detailPath(post *models.Post) string {
	return fmt.Sprintf("/posts/%d/", post.ID)
}
