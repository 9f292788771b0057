package view

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPageWrite(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		t.Fatal(err)
	}
	page := NewPage("Data Structures", "token")
	page.AddBreadcrumb("Data Structures")
	page.AddBreadcrumb("Student Photos")
	page.AddCss("student-photos.css")
	page.AddCss("student-photos.css")
	page.AddJs("student-photos.js")
	page.EnableMobileViewport()
	w := httptest.NewRecorder()
	if err := page.Write(w, renderer, http.StatusOK, "<p>fragment</p>"); err != nil {
		t.Fatal(err)
	}
	body := w.Body.String()
	for _, expected := range []string{
		"<title>Data Structures</title>",
		`name="viewport"`,
		"/static/css/student-photos.css",
		"/static/js/student-photos.js",
		"<p>fragment</p>",
		"Data Structures</span> &gt; <span class=\"breadcrumb\">Student Photos",
	} {
		if !strings.Contains(body, expected) {
			t.Fatalf("page doesn't contain %s:\n%s", expected, body)
		}
	}
	if strings.Count(body, "student-photos.css") != 1 {
		t.Fatal("stylesheet was added more than once")
	}
	if w.Header().Get("Content-Length") == "" {
		t.Fatal("expected a buffered page to have a content length")
	}
	if !strings.HasPrefix(w.Header().Get(contentType), "text/html") {
		t.Fatalf("unexpected content type %s", w.Header().Get(contentType))
	}
}

func TestPageWriteUnbuffered(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		t.Fatal(err)
	}
	page := NewPage("course", "")
	page.DisableBuffer()
	w := httptest.NewRecorder()
	if err := page.Write(w, renderer, http.StatusOK, ""); err != nil {
		t.Fatal(err)
	}
	if w.Header().Get("Content-Length") != "" {
		t.Fatal("expected an unbuffered page to have no content length")
	}
	if !w.Flushed {
		t.Fatal("expected an unbuffered page to be flushed")
	}
	if strings.Contains(w.Body.String(), `name="viewport"`) {
		t.Fatal("viewport meta tag should only be written when the mobile viewport is enabled")
	}
}
