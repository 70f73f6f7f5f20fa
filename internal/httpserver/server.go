// Package httpserver serves the portfolio as HTML, JSON and a server-sent
// event stream of the typed headline.
package httpserver

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/navigator"
	"github.com/tinytelemetry/folio/internal/theme"
	"github.com/tinytelemetry/folio/internal/typewriter"
)

//go:embed templates/*.html
var templateFS embed.FS

// ThemeCookie holds the visitor's theme choice.
const ThemeCookie = "folio_theme"

// Config configures a Server.
type Config struct {
	Addr    string
	Profile model.Profile
	Themes  theme.Set
	Theme   model.ThemeFlag // used when the visitor has no cookie
	Typing  typewriter.Options
	Clock   typewriter.Clock // nil means real time
}

// Server renders the portfolio over HTTP.
type Server struct {
	addr      string
	profile   model.Profile
	themes    theme.Set
	theme     model.ThemeFlag
	typing    typewriter.Options
	clock     typewriter.Clock
	nav       *navigator.Navigator
	tmpl      *template.Template
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer validates the profile and parses the page template.
func NewServer(cfg Config) (*Server, error) {
	if err := cfg.Profile.Validate(); err != nil {
		return nil, err
	}
	if _, err := typewriter.New(cfg.Profile.Heading, cfg.Typing); err != nil {
		return nil, fmt.Errorf("headline: %w", err)
	}
	nav, err := navigator.New(cfg.Profile.Sections, nil)
	if err != nil {
		return nil, fmt.Errorf("sections: %w", err)
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	addr := cfg.Addr
	if addr == "" {
		addr = model.DefaultHTTPAddr
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:      addr,
		profile:   cfg.Profile,
		themes:    cfg.Themes,
		theme:     cfg.Theme,
		typing:    cfg.Typing,
		clock:     cfg.Clock,
		nav:       nav,
		tmpl:      tmpl,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}, nil
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(s.tmpl)

	r.GET("/", s.handleIndex)
	r.POST("/theme", s.handleToggleTheme)
	r.GET("/resume", s.handleResume)

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/profile", s.handleProfile)
	api.GET("/nav", s.handleNav)
	api.GET("/hero/stream", s.handleHeroStream)

	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Router(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()
	log.Printf("httpserver: listening on %s", listener.Addr())

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("httpserver: serve: %v", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server. Open headline streams are
// cancelled through the base context.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// requestTheme resolves the theme from ?theme=, then the cookie, then the
// server default.
func (s *Server) requestTheme(c *gin.Context) model.ThemeFlag {
	if flag, ok := model.ParseTheme(c.Query("theme")); ok {
		return flag
	}
	if v, err := c.Cookie(ThemeCookie); err == nil {
		if flag, ok := model.ParseTheme(v); ok {
			return flag
		}
	}
	return s.theme
}

// knownSection returns id when it names a section, otherwise the hero.
func (s *Server) knownSection(id string) string {
	if _, ok := s.nav.Item(id); ok {
		return id
	}
	return s.heroID()
}

func (s *Server) heroID() string {
	return s.nav.Items()[0].ID
}

func (s *Server) aboutID() string {
	if s.nav.Index(model.DefaultAboutSection) >= 0 {
		return model.DefaultAboutSection
	}
	return s.nav.Next(s.heroID())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func (s *Server) handleProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.profile)
}
