package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/inkwell/inkwell/internal/auth"
	"github.com/inkwell/inkwell/internal/cache"
	"github.com/inkwell/inkwell/internal/db"
	"github.com/inkwell/inkwell/internal/middleware"
	"github.com/inkwell/inkwell/pkg/config"
	"github.com/inkwell/inkwell/pkg/logging"
	"github.com/inkwell/inkwell/web"
)

// Handlers holds the request handlers and their collaborators
type Handlers struct {
	users     *db.UserRepository
	groups    *db.GroupRepository
	posts     *db.PostRepository
	comments  *db.CommentRepository
	follows   *db.FollowRepository
	sessions  *auth.Sessions
	passwords *auth.PasswordService
	store     cache.Store
	cfg       *config.Config
	logger    *zap.Logger
}

// New creates the handler set
func New(database *gorm.DB, store cache.Store, passwords *auth.PasswordService, cfg *config.Config) *Handlers {
	repo := db.NewRepository(database)
	return &Handlers{
		users:     db.NewUserRepository(repo),
		groups:    db.NewGroupRepository(repo),
		posts:     db.NewPostRepository(repo),
		comments:  db.NewCommentRepository(repo),
		follows:   db.NewFollowRepository(repo),
		sessions:  auth.NewSessions(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL),
		passwords: passwords,
		store:     store,
		cfg:       cfg,
		logger:    logging.GetLogger().With(zap.String("component", "handlers")),
	}
}

// Sessions exposes the session manager, used by tests to mint cookies
func (h *Handlers) Sessions() *auth.Sessions {
	return h.sessions
}

// Router builds the gin engine with all routes wired
func (h *Handlers) Router() *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.Tracing())
	engine.Use(gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		h.logger.Error("panic recovered", zap.Any("error", err))
		h.serverError(c)
	}))

	engine.SetHTMLTemplate(web.Templates())
	engine.StaticFS("/static", web.StaticFS())
	engine.Static("/media", h.cfg.Media.Root)

	engine.Use(middleware.OriginCheck(h.forbidden))
	engine.Use(auth.CurrentUser(h.sessions, h.users))

	engine.GET("/", cache.PageCache(h.store, h.cfg.Cache.IndexTTL), h.Index)
	engine.GET("/group/:slug/", h.GroupPosts)
	engine.GET("/profile/:username/", h.Profile)
	engine.GET("/posts/:id/", h.PostDetail)

	engine.GET("/about/author/", h.AboutAuthor)
	engine.GET("/about/tech/", h.AboutTech)

	protected := engine.Group("", auth.LoginRequired())
	protected.GET("/create/", h.CreatePostForm)
	protected.POST("/create/", h.CreatePost)
	protected.GET("/posts/:id/edit/", h.EditPostForm)
	protected.POST("/posts/:id/edit/", h.EditPost)
	protected.POST("/posts/:id/comment/", h.AddComment)
	protected.GET("/follow/", h.FollowIndex)
	protected.GET("/profile/:username/follow/", h.ProfileFollow)
	protected.GET("/profile/:username/unfollow/", h.ProfileUnfollow)

	authGroup := engine.Group("/auth", middleware.RateLimit(h.cfg.RateLimit.PerMinute))
	authGroup.GET("/login/", h.LoginForm)
	authGroup.POST("/login/", h.Login)
	authGroup.GET("/signup/", h.SignupForm)
	authGroup.POST("/signup/", h.Signup)
	authGroup.GET("/logout/", h.Logout)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "inkwell"})
	})

	engine.NoRoute(h.notFound)

	return engine
}
