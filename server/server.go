package server

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"notes-lab/auth"
	"notes-lab/confs"
	"notes-lab/db"
	httpHandler "notes-lab/handlers/http"
	"notes-lab/repositories"
	"notes-lab/templates"
	"notes-lab/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	app *gin.Engine
	cfg *confs.Config
	db  db.Database
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	gin.SetMode(cfg.GinMode)
	s := &Server{
		app: gin.Default(),
		cfg: cfg,
		db:  database,
	}
	s.setup()
	return s
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.app
}

func (s *Server) Start() {
	addr := ":" + s.cfg.Port
	log.Printf("Starting notes lab on %s (mode: %s)", addr, s.cfg.GinMode)
	if err := s.app.Run(addr); err != nil {
		panic(err)
	}
}

func (s *Server) setup() {
	// Templates are embedded so the binary runs from any directory.
	tmpl := template.Must(template.New("").ParseFS(templates.FS, "*.html"))
	s.app.SetHTMLTemplate(tmpl)

	// Session cookie for the secure variant: signed, HttpOnly,
	// same-site, one hour. Secure flag only outside local debug runs.
	store := cookie.NewStore([]byte(s.cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   auth.SessionMaxAgeSeconds,
		HttpOnly: true,
		Secure:   s.cfg.GinMode == gin.ReleaseMode,
		SameSite: http.SameSiteLaxMode,
	})
	s.app.Use(sessions.Sessions(auth.SessionCookieName, store))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	s.app.Use(cors.New(corsConfig))

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Initialize repositories
	userRepo := repositories.NewUserGormRepository(s.db)
	noteRepo := repositories.NewNoteGormRepository(s.db)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo)
	noteUseCase := usecases.NewNoteUseCase(noteRepo)
	insecureUseCase := usecases.NewInsecureUseCase(s.db)

	tokens := s.newTokenStore()

	// Initialize handlers
	authHandler := httpHandler.NewSecureAuthHandler(userUseCase, tokens)
	noteHandler := httpHandler.NewSecureNoteHandler(noteUseCase, tokens)
	insecureHandler := httpHandler.NewInsecureHandler(insecureUseCase)

	s.app.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/secure/")
	})

	// Secure variant routes
	secure := s.app.Group("/secure")
	{
		secure.GET("/", authHandler.LoginPage)
		secure.POST("/login", authHandler.Login)
		secure.GET("/logout", authHandler.Logout)
		secure.GET("/register", authHandler.RegisterPage)
		secure.POST("/register", authHandler.Register)

		protected := secure.Group("")
		protected.Use(auth.RequireLogin("/secure/"))
		{
			protected.GET("/notes", noteHandler.NotesPage)
			protected.POST("/notes", noteHandler.CreateNote)
			protected.GET("/notes/:id/edit", noteHandler.EditNotePage)
			protected.POST("/notes/:id/edit", noteHandler.EditNote)
			protected.GET("/notes/:id/delete", noteHandler.DeleteNotePage)
			protected.POST("/notes/:id/delete", noteHandler.DeleteNote)
			protected.GET("/search", noteHandler.Search)
		}
	}

	// Insecure variant routes: no session, no CSRF, on purpose
	insecure := s.app.Group("/insecure")
	{
		insecure.GET("/", insecureHandler.LoginPage)
		insecure.POST("/login", insecureHandler.Login)
		insecure.GET("/register", insecureHandler.RegisterPage)
		insecure.POST("/register", insecureHandler.Register)
		insecure.GET("/notes", insecureHandler.NotesPage)
		insecure.POST("/notes", insecureHandler.AddNote)
		insecure.GET("/notes/:id/edit", insecureHandler.EditNotePage)
		insecure.POST("/notes/:id/edit", insecureHandler.EditNote)
		insecure.GET("/notes/:id/delete", insecureHandler.DeleteNotePage)
		insecure.POST("/notes/:id/delete", insecureHandler.DeleteNote)
		insecure.GET("/search", insecureHandler.Search)
	}
}

// newTokenStore picks the CSRF token backend: redis when REDIS_URL is
// configured, otherwise the in-memory store.
func (s *Server) newTokenStore() auth.TokenStore {
	ttl := time.Duration(s.cfg.CSRFTokenTTL) * time.Minute
	if s.cfg.RedisURL != "" {
		opts, err := redis.ParseURL(s.cfg.RedisURL)
		if err != nil {
			log.Printf("invalid REDIS_URL, falling back to in-memory CSRF store: %v", err)
			return auth.NewMemoryTokenStore(ttl)
		}
		log.Println("Using redis-backed CSRF token store")
		return auth.NewRedisTokenStore(redis.NewClient(opts), ttl)
	}
	log.Println("Using in-memory CSRF token store")
	return auth.NewMemoryTokenStore(ttl)
}
