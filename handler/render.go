package handler

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

type TemplateRegistry struct {
	templates map[string]*template.Template
}

// NewTemplateRegistry parses every page template in dir together with
// dir/base.html.
func NewTemplateRegistry(dir string, pages ...string) (*TemplateRegistry, error) {
	t := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		tmpl, err := template.ParseFiles(filepath.Join(dir, p), filepath.Join(dir, "base.html"))
		if err != nil {
			return nil, err
		}
		t[p] = tmpl
	}
	return &TemplateRegistry{templates: t}, nil
}

func (t *TemplateRegistry) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	return tmpl.ExecuteTemplate(w, "base.html", data)
}
