package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
)

// Renderer parses the page templates once at startup and renders them by
// name. A render failure after headers are written is logged by the caller;
// nothing more can be done for that response.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses every *.tmpl under dir.
func NewRenderer(dir string) (*Renderer, error) {
	tmpl, err := template.ParseGlob(filepath.Join(dir, "*.tmpl"))
	if err != nil {
		return nil, fmt.Errorf("parse templates in %s: %w", dir, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the named template as an HTML response.
func (rd *Renderer) Render(w http.ResponseWriter, name string, data interface{}) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return rd.tmpl.ExecuteTemplate(w, name, data)
}
