package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const imageLineCompose = `services:
  alpr:
    # pinned by the release script
    image: julianh2o/myalpr:1.2.3
    restart: unless-stopped
    environment:
      - CAM_DRIVEWAY_HIGH=rtsp://camera/high
  sidecar:
    image: julianh2o/myalpr-sidecar:9.9.9
`

func TestFindImageLine_FindsTag(t *testing.T) {
	line, found := FindImageLine([]byte(imageLineCompose), "julianh2o/myalpr")

	require.True(t, found)
	assert.Equal(t, "1.2.3", line.Tag)
	assert.Equal(t, "julianh2o/myalpr:1.2.3", imageLineCompose[line.Start:line.End])
}

func TestFindImageLine_Variants(t *testing.T) {
	tests := []struct {
		name    string
		content string
		tag     string
	}{
		{"double quoted", "image: \"julianh2o/myalpr:1.0.0\"\n", "1.0.0"},
		{"single quoted", "  image: 'julianh2o/myalpr:1.0.0'\n", "1.0.0"},
		{"list item", "- image: julianh2o/myalpr:2.0.1\n", "2.0.1"},
		{"trailing comment", "image: julianh2o/myalpr:3.1.4 # current\n", "3.1.4"},
		{"crlf", "image: julianh2o/myalpr:0.0.7\r\nrestart: always\r\n", "0.0.7"},
		{"no trailing newline", "image: julianh2o/myalpr:5.5.5", "5.5.5"},
		{"malformed tag still located", "image: julianh2o/myalpr:1.2\n", "1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, found := FindImageLine([]byte(tt.content), "julianh2o/myalpr")

			require.True(t, found)
			assert.Equal(t, tt.tag, line.Tag)
		})
	}
}

func TestFindImageLine_SkipsUnversionedTags(t *testing.T) {
	content := "services:\n  edge:\n    image: julianh2o/myalpr:latest\n  alpr:\n    image: julianh2o/myalpr:1.2.3\n"

	line, found := FindImageLine([]byte(content), "julianh2o/myalpr")

	require.True(t, found)
	assert.Equal(t, "1.2.3", line.Tag)
	assert.Equal(t, "julianh2o/myalpr:1.2.3", content[line.Start:line.End])
}

func TestFindImageLine_FallsBackToFirstMatch(t *testing.T) {
	content := "image: julianh2o/myalpr:latest\nimage: julianh2o/myalpr:1.2\n"

	line, found := FindImageLine([]byte(content), "julianh2o/myalpr")

	require.True(t, found)
	assert.Equal(t, "latest", line.Tag)
}

func TestFindImageLine_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"other image", "image: julianh2o/myalpr-sidecar:1.0.0\n"},
		{"prefixed repository", "image: docker.io/julianh2o/myalpr:1.0.0\n"},
		{"no tag", "image: julianh2o/myalpr\n"},
		{"digest", "image: julianh2o/myalpr@sha256:abcdef\n"},
		{"not an image key", "label: julianh2o/myalpr:1.0.0\n"},
		{"commented out", "# image: julianh2o/myalpr:1.0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, found := FindImageLine([]byte(tt.content), "julianh2o/myalpr")

			assert.False(t, found)
		})
	}
}

func TestFindImageLine_QuotesRegexpCharacters(t *testing.T) {
	_, found := FindImageLine([]byte("image: registryXlocal/alpr:1.0.0\n"), "registry.local/alpr")

	assert.False(t, found)
}

func TestReplaceImageTag_PreservesEveryOtherByte(t *testing.T) {
	content := []byte(imageLineCompose)
	line, found := FindImageLine(content, "julianh2o/myalpr")
	require.True(t, found)

	rewritten := ReplaceImageTag(content, line, "julianh2o/myalpr", "1.2.4")

	expected := bytes.Replace(content, []byte("julianh2o/myalpr:1.2.3"), []byte("julianh2o/myalpr:1.2.4"), 1)
	assert.Equal(t, string(expected), string(rewritten))
	assert.Equal(t, imageLineCompose[:line.Start], string(rewritten[:line.Start]))
	assert.Equal(t, imageLineCompose[line.End:], string(rewritten[line.Start+len("julianh2o/myalpr:1.2.4"):]))
	assert.Equal(t, imageLineCompose, string(content), "input must not be modified")
}

func TestReplaceImageTag_OnlyFirstOccurrence(t *testing.T) {
	content := []byte("image: julianh2o/myalpr:1.0.0\n---\nimage: julianh2o/myalpr:1.0.0\n")
	line, found := FindImageLine(content, "julianh2o/myalpr")
	require.True(t, found)

	rewritten := ReplaceImageTag(content, line, "julianh2o/myalpr", "1.0.1")

	assert.Equal(t, "image: julianh2o/myalpr:1.0.1\n---\nimage: julianh2o/myalpr:1.0.0\n", string(rewritten))
}
