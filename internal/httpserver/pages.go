package httpserver

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/navigator"
	"github.com/tinytelemetry/folio/internal/theme"
)

type entryView struct {
	ID     string
	Label  string
	Active bool
}

type sectionView struct {
	ID    string
	Label string
	Body  string
	Hero  bool
}

type paletteView struct {
	Name    string
	Palette theme.Palette
}

type pageView struct {
	Profile  model.Profile
	Palettes []paletteView
	Theme    string
	IsDark   bool
	Logo     string
	HeroID   string
	AboutID  string
	Entries  []entryView
	Sections []sectionView
}

// handleIndex renders the whole page with the hero active. From there the
// browser owns the active entry: nav links are fragments and the section
// observer moves the highlight as the page scrolls.
func (s *Server) handleIndex(c *gin.Context) {
	if section := c.Query("section"); section != "" {
		c.Redirect(http.StatusFound, s.sectionURL(c.Query("theme"), section))
		return
	}

	flag := s.requestTheme(c)
	entries := s.nav.Entries(s.heroID())
	view := pageView{
		Profile:  s.profile,
		Theme:    flag.Name(),
		IsDark:   flag.IsDark,
		Logo:     logoText(s.profile.Name),
		HeroID:   s.heroID(),
		AboutID:  s.aboutID(),
		Entries:  make([]entryView, 0, len(entries)),
		Sections: make([]sectionView, 0, len(entries)),
	}
	for _, f := range []model.ThemeFlag{{IsDark: true}, {IsDark: false}} {
		view.Palettes = append(view.Palettes, paletteView{Name: f.Name(), Palette: s.themes.For(f)})
	}
	for i, e := range entries {
		view.Entries = append(view.Entries, entryView{
			ID:     e.Item.ID,
			Label:  e.Item.Label,
			Active: e.State == navigator.Active,
		})
		view.Sections = append(view.Sections, sectionView{
			ID:    e.Item.ID,
			Label: e.Item.Label,
			Body:  strings.TrimSpace(s.profile.Body(e.Item.ID)),
			Hero:  i == 0,
		})
	}

	c.HTML(http.StatusOK, "index.html", view)
}

// handleToggleTheme stores the theme cookie. The page script swaps the
// palette in place and posts the chosen theme as JSON; a plain form post
// flips the current theme and is redirected back to the page.
func (s *Server) handleToggleTheme(c *gin.Context) {
	flag, ok := model.ParseTheme(c.PostForm("theme"))
	if !ok {
		flag = s.requestTheme(c).Toggle()
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ThemeCookie, flag.Name(), 365*24*60*60, "/", "", false, true)

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, gin.H{"theme": flag.Name()})
		return
	}

	target := "/"
	if section := c.PostForm("section"); section != "" {
		target = s.sectionURL("", section)
	}
	c.Redirect(http.StatusSeeOther, target)
}

// sectionURL points at the page fragment for id, keeping an explicit theme.
func (s *Server) sectionURL(themeName, id string) string {
	target := "/"
	if flag, ok := model.ParseTheme(themeName); ok {
		target += "?theme=" + url.QueryEscape(flag.Name())
	}
	return target + "#" + url.PathEscape(s.knownSection(id))
}

func (s *Server) handleResume(c *gin.Context) {
	r := s.profile.Resume
	if r.Path == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no resume configured"})
		return
	}
	if _, err := os.Stat(r.Path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("httpserver: stat resume: %v", err)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "resume not available"})
		return
	}

	name := r.DownloadName
	if name == "" {
		name = "resume.pdf"
	}
	c.FileAttachment(r.Path, name)
}

func (s *Server) handleNav(c *gin.Context) {
	active := c.Query("active")
	if _, ok := s.nav.Item(active); !ok {
		active = ""
	}

	entries := s.nav.Entries(active)
	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, gin.H{
			"id":    e.Item.ID,
			"label": e.Item.Label,
			"state": e.State.String(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"active": active, "entries": out})
}

func logoText(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return "folio"
}
