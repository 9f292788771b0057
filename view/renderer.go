package view

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFiles embed.FS

// html/template backed Renderer holding every template of the service
type TemplateRenderer struct {
	templates	*template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	templates, err := template.New("").Funcs(template.FuncMap{
		"safe": func(s string) template.HTML {
			return template.HTML(s)
		},
	}).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates}, nil
}

func (r *TemplateRenderer) RenderTemplate(name string, data interface{}) (string, error) {
	var out bytes.Buffer
	if err := r.templates.ExecuteTemplate(&out, name, data); err != nil {
		logger.WithError(err).Errorf("error rendering \"%s\" template", name)
		return "", err
	}
	return out.String(), nil
}
