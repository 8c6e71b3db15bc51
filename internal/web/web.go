// Package web renders the marketing page and serves its static assets
// from an embedded filesystem.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/recyclink/recyclink/internal/content"
)

//go:embed templates static
var assets embed.FS

type Pages struct {
	tmpl    *template.Template
	static  http.Handler
	content *content.Content
}

// New parses the embedded templates and binds the marketing content.
func New(c *content.Content) (*Pages, error) {
	funcs := template.FuncMap{
		"addOne": func(i int) int { return i + 1 },
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(assets, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("locating static assets: %w", err)
	}

	return &Pages{
		tmpl:    tmpl,
		static:  http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))),
		content: c,
	}, nil
}

// HandleIndex renders the marketing page.
func (p *Pages) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.tmpl.ExecuteTemplate(w, "index.html.tmpl", p.content); err != nil {
		slog.Error("Unable to render index", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// HandleStatic serves the embedded JS/CSS assets.
func (p *Pages) HandleStatic(w http.ResponseWriter, r *http.Request) {
	p.static.ServeHTTP(w, r)
}
