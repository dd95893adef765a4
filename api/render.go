package api

import (
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"
	
	"github.com/gin-gonic/gin/render"
	"github.com/katatrina/feature-dashboard/internal/util"
)

const layoutTemplate = "layout"

var pageNames = []string{"home", "dashboard", "features", "timeline", "timeline_item", "error"}

// htmlRender keeps one template set per page so each page can define its own "content".
type htmlRender struct {
	templates map[string]*template.Template
}

var _ render.HTMLRender = (*htmlRender)(nil)

func newHTMLRender(fsys fs.FS, funcs template.FuncMap) (*htmlRender, error) {
	r := &htmlRender{templates: make(map[string]*template.Template, len(pageNames))}
	
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(fsys, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %q: %w", name, err)
		}
		r.templates[name] = t
	}
	
	return r, nil
}

// Instance implements render.HTMLRender; unknown pages render the error page.
func (r *htmlRender) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		t = r.templates["error"]
	}
	
	return render.HTML{
		Template: t,
		Name:     layoutTemplate,
		Data:     data,
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"displayDate": func(t time.Time) string {
			return t.Format(util.DisplayDateLayout)
		},
		"isoDate": func(t time.Time) string {
			return t.Format(util.DateLayout)
		},
		"relative":  util.FormatRelative,
		"titleCase": util.TitleCaseStatus,
		"lower":     strings.ToLower,
	}
}
