package view

import (
	"github.com/DAv10195/submit_photos/elements/students"
	"github.com/DAv10195/submit_photos/roster"
	"github.com/DAv10195/submit_photos/util/containers"
)

const (
	studentPhotosTemplate	= "student_photos.html"
	studentPhotosBreadcrumb	= "Student Photos"
	studentPhotosJs			= "student-photos.js"
	studentPhotosCss		= "student-photos.css"
)

// model of the student photos template
type StudentPhotosData struct {
	Sections		*roster.Sections	`json:"sections"`
	HasFullAccess	bool				`json:"has_full_access"`
	CsrfToken		string				`json:"csrf_token"`
	MaxSizeString	string				`json:"max_size_string"`
	View			roster.ViewMode		`json:"view"`
	HasSections		bool				`json:"has_sections"`
}

// renders the student photos fragment of a course
type StudentPhotosView struct {
	Renderer	Renderer
	UploadLimit	roster.UploadLimitProvider
}

func NewStudentPhotosView(renderer Renderer, uploadLimit roster.UploadLimitProvider) *StudentPhotosView {
	return &StudentPhotosView{Renderer: renderer, UploadLimit: uploadLimit}
}

// group the given roster by what the grader may see and render it. The only error returned is a rendering error
func (v *StudentPhotosView) ListStudentPhotos(chrome Chrome, courseRoster []*students.Student, graderSections *containers.StringSet, hasFullAccess bool, view roster.ViewMode) (string, error) {
	chrome.AddBreadcrumb(studentPhotosBreadcrumb)
	chrome.AddJs(studentPhotosJs)
	chrome.AddCss(studentPhotosCss)
	chrome.EnableMobileViewport()
	chrome.DisableBuffer()
	data := &StudentPhotosData{
		Sections: roster.Partition(courseRoster, graderSections, hasFullAccess, view),
		HasFullAccess: hasFullAccess,
		CsrfToken: chrome.CsrfToken(),
		MaxSizeString: roster.FormatUploadLimit(v.UploadLimit.GetUploadMaxBytes()),
		View: view,
		HasSections: !graderSections.IsEmpty(),
	}
	return v.Renderer.RenderTemplate(studentPhotosTemplate, data)
}
