package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templateFS embed.FS

const layoutName = "layout"

// Renderer is a gin HTMLRender holding one template set per page, each made
// of the layout, the shared partials and the page itself.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every embedded page
func NewRenderer() (*Renderer, error) {
	shared, err := fs.Glob(templateFS, "templates/layouts/*.html")
	if err != nil {
		return nil, err
	}
	partials, err := fs.Glob(templateFS, "templates/partials/*.html")
	if err != nil {
		return nil, err
	}
	shared = append(shared, partials...)

	r := &Renderer{templates: map[string]*template.Template{}}
	for _, dir := range []string{"pages", "forms", "errors"} {
		pages, err := fs.Glob(templateFS, path.Join("templates", dir, "*.html"))
		if err != nil {
			return nil, err
		}
		for _, page := range pages {
			files := append(append([]string{}, shared...), page)
			t, err := template.New(path.Base(page)).Funcs(Funcs()).ParseFS(templateFS, files...)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", page, err)
			}
			r.templates[strings.TrimPrefix(page, "templates/")] = t
		}
	}
	return r, nil
}

// MustNewRenderer is like NewRenderer but panics on a template error
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Instance implements render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		panic(fmt.Sprintf("template %q not found", name))
	}
	return render.HTML{Template: t, Name: layoutName, Data: data}
}

// Has reports whether a page exists
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

// Funcs returns the template helpers
func Funcs() template.FuncMap {
	return template.FuncMap{
		"datetime": FormatDatetime,
		"join":     strings.Join,
		"contains": contains,
		"deref":    deref,
	}
}

// FormatDatetime renders t as "full" or "medium" (the default)
func FormatDatetime(t time.Time, format string) string {
	switch format {
	case "full":
		return t.Format("Monday January, 2, 2006 at 3:04PM")
	default:
		return t.Format("Mon 01, 02, 2006 3:04PM")
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func deref(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}
