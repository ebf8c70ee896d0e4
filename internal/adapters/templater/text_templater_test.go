package templater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextTemplater_Render(t *testing.T) {
	values := map[string]interface{}{
		"Version":  "1.2.4",
		"Previous": "1.2.3",
		"Image":    "julianh2o/myalpr",
	}

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{name: "plain text", template: "Release", expected: "Release"},
		{name: "version", template: "Release {{.Version}}", expected: "Release 1.2.4"},
		{name: "tag name", template: "v{{.Version}}", expected: "v1.2.4"},
		{name: "several values", template: "{{.Image}}: {{.Previous}} -> {{.Version}}", expected: "julianh2o/myalpr: 1.2.3 -> 1.2.4"},
	}

	sut := ProvideTextTemplater()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sut.Render(tt.template, "commit-message", values)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTextTemplater_MissingKeyFails(t *testing.T) {
	sut := ProvideTextTemplater()

	_, err := sut.Render("Release {{.Unknown}}", "commit-message", map[string]interface{}{"Version": "1.2.4"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render template commit-message")
}

func TestTextTemplater_ParseError(t *testing.T) {
	sut := ProvideTextTemplater()

	_, err := sut.Render("v{{.Version", "tag-name", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template tag-name")
}
