package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"
)

//go:embed templates/*
var templateFS embed.FS

// templateFuncs are the display helpers available to every page template.
// "datetime" and "datetimefull" are the human-readable renderings; "showtime"
// is the fixed wire format show listings use.
var templateFuncs = template.FuncMap{
	"datetime": func(t time.Time) string {
		return t.Format("Mon 01, 02, 2006 3:04PM")
	},
	"datetimefull": func(t time.Time) string {
		return t.Format("Monday January, 2, 2006 at 3:04PM")
	},
	"showtime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05")
	},
	"inList": func(s string, list []string) bool {
		for _, item := range list {
			if item == s {
				return true
			}
		}
		return false
	},
}

// page is the envelope handed to the layout template.
type page struct {
	Flashes []FlashMessage
	Data    any
}

// Renderer renders embedded HTML page templates inside the shared layout
// and delivers pending flash messages with each page.
type Renderer struct {
	logger *slog.Logger
	flash  *FlashCodec
	pages  map[string]*template.Template
}

// NewRenderer parses every page template against the layout up front so a
// broken template fails at startup, not per request.
func NewRenderer(logger *slog.Logger, flash *FlashCodec) (*Renderer, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "layout.html" {
			continue
		}
		t, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{
		logger: logger,
		flash:  flash,
		pages:  pages,
	}, nil
}

// Render writes the named page with the given status. Messages passed in
// flashes are shown on this render; pending cookie flashes are delivered
// and cleared as well.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, statusCode int, name string, data any, flashes ...FlashMessage) {
	t, ok := rn.pages[name]
	if !ok {
		rn.logger.Error("unknown page template", "name", name)
		rn.ServerError(w, r)
		return
	}
	all := rn.flash.ReadAndClear(w, r)
	all = append(all, flashes...)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", page{Flashes: all, Data: data}); err != nil {
		rn.logger.Error("render page", "name", name, "error", err)
		rn.ServerError(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

// NotFound renders the dedicated 404 page.
func (rn *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rn.Render(w, r, http.StatusNotFound, "404.html", nil)
}

// ServerError renders the dedicated 500 page without going back through
// Render, so a template failure cannot recurse.
func (rn *Renderer) ServerError(w http.ResponseWriter, r *http.Request) {
	t, ok := rn.pages["500.html"]
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", page{}); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
