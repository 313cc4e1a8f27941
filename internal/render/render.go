package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"weekly-checklist/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names.
const (
	tmplChecklist = "checklist.html"
	tmplHome      = "home.html"
	tmplToday     = "today.html"
	tmplSetup     = "setup.html"
	tmplNavigator = "navigator.html"
)

// Renderer turns checklists and static pages into complete HTML documents.
// All dynamic values go through html/template escaping.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("render.New: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Checklist renders the week page for cl. weekID is the id the page was requested under
// and drives the previous/next links; everything else reads from cl.
func (r *Renderer) Checklist(cl *model.WeeklyChecklist, weekID string) (string, error) {
	return r.execute(tmplChecklist, newChecklistPage(cl, weekID))
}

// Home renders the landing page with the saved weeks.
func (r *Renderer) Home(data HomePage) (string, error) {
	return r.execute(tmplHome, data)
}

// Today renders the minimal legacy landing page.
func (r *Renderer) Today(currentWeekID string) (string, error) {
	return r.execute(tmplToday, struct{ CurrentWeekID string }{currentWeekID})
}

// Setup renders the connection guide. host is the address the client used to reach the server.
func (r *Renderer) Setup(host, currentWeekID string) (string, error) {
	return r.execute(tmplSetup, struct {
		Host          string
		CurrentWeekID string
	}{host, currentWeekID})
}

// Navigator renders the curated link sections.
func (r *Renderer) Navigator(sections []model.NavigatorSection, currentWeekID string) (string, error) {
	return r.execute(tmplNavigator, struct {
		Sections      []model.NavigatorSection
		CurrentWeekID string
	}{sections, currentWeekID})
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
