package handlers

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/epeers/fundmanager/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// screenView is what index.tmpl renders
type screenView struct {
	Status     string
	StatusKind models.StatusKind
	EditMode   bool
	Form       models.Draft
	Categories []string
	RiskLevels []string
	LookupID   string
	Lookup     string
	Columns    []string
	Rows       []fundRow
}

type fundRow struct {
	ID    int64
	Cells []string
}

func newScreenView(s models.ScreenState) screenView {
	view := screenView{
		Status:     s.Status,
		StatusKind: models.ClassifyStatus(s.Status),
		EditMode:   s.EditMode,
		Form:       s.Form,
		LookupID:   s.LookupID,
		Columns:    models.FieldNames,
	}

	for _, c := range models.Categories {
		view.Categories = append(view.Categories, string(c))
	}
	for _, r := range models.RiskLevels {
		view.RiskLevels = append(view.RiskLevels, string(r))
	}

	if s.Lookup != nil {
		view.Lookup = s.Lookup.Dump()
	}

	for _, f := range s.Funds {
		view.Rows = append(view.Rows, fundRow{ID: f.FundID, Cells: f.Draft().Values()})
	}
	return view
}

func loadTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
}

func staticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
