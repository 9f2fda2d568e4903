// Package render implements Echo's Renderer over embedded HTML templates.
package render

import (
	"embed"
	"html/template"
	"io"

	"medlink/internal/domain/entity"
	"medlink/internal/errors"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData carries the values every page template can reference. Username and
// UserType come from the logged-in principal and are empty for anonymous
// visitors. Success and Error hold flash messages consumed for this request.
type PageData struct {
	Username string
	UserType string
	Success  []string
	Error    []string
	CurrUser *entity.Patient
	Status   int
	Message  string
}

type htmlRenderer struct {
	templates *template.Template
}

// New parses the embedded template set. Templates are addressed by file name,
// e.g. "hospitalLogin.html".
func New() (echo.Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	return &htmlRenderer{templates: t}, nil
}

func (r *htmlRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return errors.WithStack(r.templates.ExecuteTemplate(w, name, data))
}
