package view

import (
	"errors"
	"github.com/DAv10195/submit_photos/elements/students"
	"github.com/DAv10195/submit_photos/roster"
	"github.com/DAv10195/submit_photos/util/containers"
	"strings"
	"testing"
)

type recordingRenderer struct {
	name	string
	data	interface{}
	err		error
}

func (r *recordingRenderer) RenderTemplate(name string, data interface{}) (string, error) {
	r.name, r.data = name, data
	if r.err != nil {
		return "", r.err
	}
	return "rendered " + name, nil
}

func testRoster() []*students.Student {
	return []*students.Student{
		{UserName: "amy", FirstName: "Amy", LastName: "Pond", RegistrationSection: students.Section("A")},
		{UserName: "bob", RegistrationSection: nil},
		{UserName: "rory", FirstName: "Rory", RegistrationSection: students.Section("B")},
	}
}

func TestListStudentPhotos(t *testing.T) {
	renderer := &recordingRenderer{}
	page := NewPage("course", "token")
	photosView := NewStudentPhotosView(renderer, roster.StaticUploadLimit(8 * 1024 * 1024))
	out, err := photosView.ListStudentPhotos(page, testRoster(), containers.NewStringSet("A"), true, roster.ViewSections)
	if err != nil {
		t.Fatal(err)
	}
	if out != "rendered " + studentPhotosTemplate {
		t.Fatalf("expected the renderer output to be returned unchanged but got \"%s\"", out)
	}
	if len(page.Breadcrumbs) != 1 || page.Breadcrumbs[0] != studentPhotosBreadcrumb {
		t.Fatalf("unexpected breadcrumbs: %v", page.Breadcrumbs)
	}
	if len(page.Js) != 1 || page.Js[0] != studentPhotosJs || len(page.Css) != 1 || page.Css[0] != studentPhotosCss {
		t.Fatalf("unexpected assets: js = %v, css = %v", page.Js, page.Css)
	}
	if !page.MobileViewport || page.Buffered {
		t.Fatal("expected the mobile viewport to be enabled and the output buffer to be disabled")
	}
	data, ok := renderer.data.(*StudentPhotosData)
	if !ok {
		t.Fatalf("unexpected template data type %T", renderer.data)
	}
	if !data.HasFullAccess || !data.HasSections || data.CsrfToken != "token" || data.View != roster.ViewSections {
		t.Fatalf("unexpected pass through fields in template data: %+v", data)
	}
	if data.MaxSizeString != "8.00 MB (8,192.00 KB)" {
		t.Fatalf("unexpected max size string: %s", data.MaxSizeString)
	}
	if strings.Join(data.Sections.Keys(), ",") != "A" || data.Sections.Total() != 1 {
		t.Fatalf("expected only section A to be shown but got %v", data.Sections.Keys())
	}
}

func TestListStudentPhotosWithoutSections(t *testing.T) {
	renderer := &recordingRenderer{}
	photosView := NewStudentPhotosView(renderer, roster.StaticUploadLimit(0))
	if _, err := photosView.ListStudentPhotos(NewPage("course", ""), testRoster(), nil, false, roster.ViewAll); err != nil {
		t.Fatal(err)
	}
	data := renderer.data.(*StudentPhotosData)
	if data.HasSections {
		t.Fatal("expected has_sections to be false for a grader without sections")
	}
	if data.Sections.Total() != 0 {
		t.Fatalf("expected a limited grader without sections to see nothing but got %d students", data.Sections.Total())
	}
	if data.MaxSizeString != "0.00 MB (0.00 KB)" {
		t.Fatalf("expected a zero upload limit to pass through but got %s", data.MaxSizeString)
	}
}

func TestListStudentPhotosRenderError(t *testing.T) {
	renderErr := errors.New("broken template")
	photosView := NewStudentPhotosView(&recordingRenderer{err: renderErr}, roster.StaticUploadLimit(1))
	if _, err := photosView.ListStudentPhotos(NewPage("course", ""), testRoster(), nil, true, roster.ViewAll); err != renderErr {
		t.Fatalf("expected the rendering error to be returned but got %v", err)
	}
}

func TestStudentPhotosTemplate(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		t.Fatal(err)
	}
	photosView := NewStudentPhotosView(renderer, roster.StaticUploadLimit(8 * 1024 * 1024))
	out, err := photosView.ListStudentPhotos(NewPage("course", "secret-token"), testRoster(), containers.NewStringSet("A"), true, roster.ViewAll)
	if err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{
		`data-section="A"`,
		`data-section="NULL"`,
		`data-section="B"`,
		"Amy Pond",
		"Rory",
		`data-csrf-token="secret-token"`,
		"8.00 MB (8,192.00 KB)",
		`value="all" checked`,
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("rendered fragment doesn't contain %s:\n%s", expected, out)
		}
	}
	// the view toggle is a GET form, so the token must stay out of its query string
	form := out[strings.Index(out, `<form class="view-toggle"`):strings.Index(out, "</form>")]
	if strings.Contains(form, "csrf_token") || strings.Contains(form, "secret-token") {
		t.Fatalf("view toggle form shouldn't carry the csrf token:\n%s", form)
	}
	if strings.Index(out, `data-section="A"`) > strings.Index(out, `data-section="NULL"`) {
		t.Fatal("sections should be rendered in roster order")
	}
	out, err = photosView.ListStudentPhotos(NewPage("course", ""), nil, nil, false, roster.ViewAll)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No students to show.") || strings.Contains(out, "view-toggle") {
		t.Fatalf("unexpected fragment for an empty roster:\n%s", out)
	}
}
