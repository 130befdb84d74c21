package controllers

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageTemplate returns the embedded form page, ready for
// gin.Engine.SetHTMLTemplate. Embedding keeps handler tests free of
// working-directory assumptions.
func PageTemplate() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
}
