package view

import (
	"net/http"
	"strconv"
)

const (
	layoutTemplate	= "layout.html"
	contentType		= "Content-Type"
	textHtml		= "text/html; charset=utf-8"
)

// per request Chrome collecting what the layout needs to wrap a fragment
type Page struct {
	Title				string
	Breadcrumbs			[]string
	Js					[]string
	Css					[]string
	MobileViewport		bool
	Buffered			bool
	Content				string
	csrfToken			string
}

func NewPage(title, csrfToken string) *Page {
	return &Page{Title: title, Buffered: true, csrfToken: csrfToken}
}

func (p *Page) AddBreadcrumb(label string) {
	p.Breadcrumbs = append(p.Breadcrumbs, label)
}

func (p *Page) AddJs(file string) {
	p.Js = appendOnce(p.Js, file)
}

func (p *Page) AddCss(file string) {
	p.Css = appendOnce(p.Css, file)
}

func (p *Page) EnableMobileViewport() {
	p.MobileViewport = true
}

func (p *Page) DisableBuffer() {
	p.Buffered = false
}

func (p *Page) CsrfToken() string {
	return p.csrfToken
}

// wrap the given fragment in the layout and write it with the given status. A buffered page is rendered in full
// before anything is written, an unbuffered one is flushed right after it is written
func (p *Page) Write(w http.ResponseWriter, renderer Renderer, status int, content string) error {
	p.Content = content
	html, err := renderer.RenderTemplate(layoutTemplate, p)
	if err != nil {
		return err
	}
	w.Header().Set(contentType, textHtml)
	if p.Buffered {
		w.Header().Set("Content-Length", strconv.Itoa(len(html)))
	}
	w.WriteHeader(status)
	if _, err := w.Write([]byte(html)); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok && !p.Buffered {
		flusher.Flush()
	}
	return nil
}

func appendOnce(files []string, file string) []string {
	for _, f := range files {
		if f == file {
			return files
		}
	}
	return append(files, file)
}
