package email

// PreviewData holds sample values for rendering templates locally.
var PreviewData = map[Template]any{
	TemplateQuoteConfirmation: quoteTemplateData{
		BusinessName:     "Yard Solutions LLC",
		JobType:          "snow removal",
		URL:              "https://yardsolutionskc.com/quotes/3f2b8c1e-4a5d-4e6f-8a7b-9c0d1e2f3a4b",
		PreferredContact: "(816) 555-0134",
		Email:            "jane.doe@example.com",
	},
}

// RenderPreview renders a template with its preview data.
func RenderPreview(name Template) (string, error) {
	data, ok := PreviewData[name]
	if !ok {
		return "", &UnknownTemplateError{Name: name}
	}
	return Render(name, data)
}

type UnknownTemplateError struct {
	Name Template
}

func (e *UnknownTemplateError) Error() string {
	return "unknown email template: " + string(e.Name)
}
