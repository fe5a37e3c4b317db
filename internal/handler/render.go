package handler

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/givers/contact/internal/formspec"
	"github.com/givers/contact/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets/*
var assetFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/contact.html.tmpl"))

// Assets exposes the stylesheet and script served under /assets/.
func Assets() http.Handler {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/assets/", http.FileServerFS(sub))
}

type pageData struct {
	Title       string
	SubmitLabel string
	Status      model.SubmissionStatus
	ViewID      string
	Fields      []fieldData
}

type fieldData struct {
	formspec.FieldSpec
	Value string
	Hint  string
}

// newPageData combines presentation, view state and the field to flag as
// missing (empty for none).
func newPageData(spec *formspec.Spec, view *model.ContactView, missing model.Field) pageData {
	data := pageData{
		Title:       spec.Title,
		SubmitLabel: spec.SubmitLabel,
		Status:      view.Status,
		ViewID:      view.ID,
		Fields:      make([]fieldData, 0, len(spec.Fields)),
	}
	for _, f := range spec.Fields {
		fd := fieldData{FieldSpec: f, Value: view.Form.Value(f.Name)}
		if f.Name == missing {
			fd.Hint = spec.RequiredHint
		}
		data.Fields = append(data.Fields, fd)
	}
	return data
}

// renderPage executes into a buffer first so a template failure still yields a
// clean 500 instead of a half-written page.
func renderPage(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		slog.Error("render contact page", "error", err, "view_id", data.ViewID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
