// Package view renders the template finder page: the company form and the
// grid of matched templates.
package view

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"templatefinder/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// ShownField names the hidden form input that carries the cards currently
// on screen, so a failed form post can render them again.
const ShownField = "shown_templates"

// Theme selects the page styling. Both themes render the same markup.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a raw value onto a known theme.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	}
	return "", false
}

// PageData is everything the page template needs for one render.
type PageData struct {
	Theme     Theme
	Form      model.CompanyProfile
	Templates []model.Template
	Error     string
}

// Renderer executes the parsed page template.
// It is safe for concurrent use.
type Renderer struct {
	page *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	page, err := template.New("page.html").
		Funcs(template.FuncMap{
			"shown":      encodeShown,
			"shownField": func() string { return ShownField },
		}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{page: page}, nil
}

// Render writes the full page to w. Output is buffered so a failed render
// never leaves a partial page behind.
func (r *Renderer) Render(w io.Writer, data PageData) error {
	if data.Theme == "" {
		data.Theme = ThemeDark
	}
	var buf bytes.Buffer
	if err := r.page.ExecuteTemplate(&buf, "page.html", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func encodeShown(templates []model.Template) string {
	if len(templates) == 0 {
		return ""
	}
	b, err := json.Marshal(templates)
	if err != nil {
		return ""
	}
	return string(b)
}

// DecodeShown reads back the ShownField value. Anything unreadable counts
// as no cards.
func DecodeShown(raw string) []model.Template {
	if raw == "" {
		return nil
	}
	var templates []model.Template
	if err := json.Unmarshal([]byte(raw), &templates); err != nil {
		return nil
	}
	return templates
}
