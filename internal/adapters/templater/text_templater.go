package templater

import (
	"fmt"
	"strings"
	"text/template"

	"bumpr/internal/ports"
)

var _ ports.Templater = (*TextTemplater)(nil)

// TextTemplater renders text/template strings. A reference to a missing value
// is an error, never an empty string in a commit message or tag name.
type TextTemplater struct{}

func ProvideTextTemplater() *TextTemplater {
	return &TextTemplater{}
}

func (t TextTemplater) Render(templateText string, templateName string, values map[string]interface{}) (string, error) {
	tmpl, err := template.New(templateName).Option("missingkey=error").Parse(templateText)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, values); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", templateName, err)
	}

	return result.String(), nil
}
