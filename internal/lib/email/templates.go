package email

import (
	"embed"
	"html/template"
)

// Template names an embedded HTML template under templates/.
type Template string

const (
	TemplateQuoteConfirmation Template = "quote_confirmation"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
