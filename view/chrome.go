package view

// navigation trail shown above a page
type Breadcrumbs interface {
	AddBreadcrumb(label string)
}

// static assets a page needs, by file name
type Assets interface {
	AddJs(file string)
	AddCss(file string)
}

// how the page is sent to the client
type Output interface {
	EnableMobileViewport()
	DisableBuffer()
}

type CsrfTokenSource interface {
	CsrfToken() string
}

// everything around a rendered fragment: breadcrumbs, assets, output mode and the CSRF token of the session
type Chrome interface {
	Breadcrumbs
	Assets
	Output
	CsrfTokenSource
}

// renders named templates into strings
type Renderer interface {
	RenderTemplate(name string, data interface{}) (string, error)
}
