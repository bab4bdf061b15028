package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"

	"Association_Portal/internal/handler"
	"Association_Portal/internal/middleware"
	"Association_Portal/internal/model"
	"Association_Portal/internal/pkg"
	"Association_Portal/internal/service"
	"Association_Portal/internal/upload"
)

// Deps carries everything the routes need.
type Deps struct {
	Log         *slog.Logger
	Env         string
	Development bool
	Tokens      *pkg.TokenManager
	Files       upload.Store
	// UploadDir is served read-only under /uploads when set.
	UploadDir string

	Auth        *service.AuthService
	Articles    *service.ArticleService
	Events      *service.EventService
	Gallery     *service.GalleryService
	BookClub    *service.BookClubService
	Newsletters *service.NewsletterService
	Contact     *service.ContactService
	Academic    *service.AcademicService
}

// Limits configures the outer net/http middleware.
type Limits struct {
	AllowedOrigins []string
	Requests       int
	Window         time.Duration
	// Counter shares rate-limit counts between instances, nil keeps them in memory.
	Counter httprate.LimitCounter
}

func InitRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(d.Log, d.Development), middleware.RequestLogger(d.Log))

	if d.UploadDir != "" {
		r.Static(upload.URLPrefix, d.UploadDir)
	}

	auth := handler.NewAuthHandler(d.Auth, d.Log, d.Development)
	articles := handler.NewArticleHandler(d.Articles, d.Files, d.Log, d.Development)
	events := handler.NewEventHandler(d.Events, d.Files, d.Log, d.Development)
	gallery := handler.NewGalleryHandler(d.Gallery, d.Files, d.Log, d.Development)
	bookclub := handler.NewBookClubHandler(d.BookClub, d.Files, d.Log, d.Development)
	newsletters := handler.NewNewsletterHandler(d.Newsletters, d.Files, d.Log, d.Development)
	contact := handler.NewContactHandler(d.Contact, d.Log, d.Development)
	academic := handler.NewAcademicHandler(d.Academic, d.Log, d.Development)

	guard := middleware.Auth(d.Tokens)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	api := r.Group("/api")
	api.GET("/health", handler.Health(d.Env))

	// login and admin accounts
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/verify", guard, auth.Verify)
		authGroup.POST("/change-password", guard, auth.ChangePassword)
		authGroup.GET("/admins", guard, adminOnly, auth.ListAdmins)
		authGroup.POST("/admins", guard, adminOnly, auth.CreateAdmin)
	}

	// articles
	articleGroup := api.Group("/articles")
	{
		articleGroup.GET("", articles.List)
		articleGroup.GET("/featured/latest", articles.Latest)
		articleGroup.GET("/:id", articles.Get)
		articleGroup.POST("/:id/like", articles.Like)
		articleGroup.POST("", guard, articles.Create)
		articleGroup.PUT("/:id", guard, articles.Update)
		articleGroup.DELETE("/:id", guard, articles.Delete)
	}

	// events
	eventGroup := api.Group("/events")
	{
		eventGroup.GET("", events.List)
		eventGroup.GET("/upcoming/latest", events.Upcoming)
		eventGroup.GET("/past/latest", events.Past)
		eventGroup.GET("/:id", events.Get)
		eventGroup.POST("/:id/register", events.Register)
		eventGroup.POST("", guard, events.Create)
		eventGroup.PUT("/:id", guard, events.Update)
		eventGroup.DELETE("/:id", guard, events.Delete)
	}

	// gallery
	galleryGroup := api.Group("/gallery")
	{
		galleryGroup.GET("", gallery.List)
		galleryGroup.GET("/featured/latest", gallery.Featured)
		galleryGroup.GET("/:id", gallery.Get)
		galleryGroup.POST("/:id/like", gallery.Like)
		galleryGroup.POST("", guard, gallery.Create)
		galleryGroup.POST("/bulk/:eventId", guard, gallery.Bulk)
		galleryGroup.PUT("/:id", guard, gallery.Update)
		galleryGroup.DELETE("/:id", guard, gallery.Delete)
	}

	// book club
	bookGroup := api.Group("/bookclub")
	{
		bookGroup.GET("/current-book", bookclub.CurrentBook)

		bookGroup.GET("/books", bookclub.ListBooks)
		bookGroup.GET("/books/:id", bookclub.GetBook)
		bookGroup.POST("/books/:id/reviews", bookclub.AddReview)
		bookGroup.POST("/books", guard, bookclub.CreateBook)
		bookGroup.PUT("/books/:id", guard, bookclub.UpdateBook)
		bookGroup.DELETE("/books/:id", guard, bookclub.DeleteBook)

		bookGroup.GET("/discussions", bookclub.ListDiscussions)
		bookGroup.GET("/discussions/:id", bookclub.GetDiscussion)
		bookGroup.POST("/discussions/:id/join", bookclub.JoinDiscussion)
		bookGroup.POST("/discussions", guard, bookclub.CreateDiscussion)
		bookGroup.PUT("/discussions/:id", guard, bookclub.UpdateDiscussion)
		bookGroup.DELETE("/discussions/:id", guard, bookclub.DeleteDiscussion)
	}

	// newsletters
	newsletterGroup := api.Group("/newsletters")
	{
		newsletterGroup.GET("", newsletters.List)
		newsletterGroup.GET("/public/:filename", newsletters.Stream)
		newsletterGroup.GET("/:id", newsletters.Get)
		newsletterGroup.POST("/:id/download", newsletters.Download)
		newsletterGroup.POST("", guard, newsletters.Create)
		newsletterGroup.PUT("/:id", guard, newsletters.Update)
		newsletterGroup.DELETE("/:id", guard, newsletters.Delete)
	}

	// academic links
	academicGroup := api.Group("/academic-links")
	{
		academicGroup.GET("", academic.Get)
		academicGroup.PUT("", guard, adminOnly, academic.Update)
	}

	// contact messages
	contactGroup := api.Group("/contact")
	{
		contactGroup.POST("", contact.Submit)

		manage := contactGroup.Group("", guard, adminOnly)
		manage.GET("", contact.List)
		manage.GET("/stats/overview", contact.Stats)
		manage.PATCH("/bulk-update", contact.BulkUpdate)
		manage.GET("/:id", contact.Get)
		manage.PUT("/:id", contact.Update)
		manage.DELETE("/:id", contact.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
	return r
}

// New builds the complete HTTP handler: CORS and per-IP rate limiting in
// front of the gin engine.
func New(d Deps, l Limits) http.Handler {
	var h http.Handler = InitRouter(d)
	h = middleware.RateLimit(l.Requests, l.Window, l.Counter)(h)
	return middleware.CORS(l.AllowedOrigins)(h)
}
