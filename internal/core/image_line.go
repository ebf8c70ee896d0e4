package core

import (
	"regexp"

	"bumpr/internal/core/domain"
)

// ImageLine locates the "name:tag" substring of an image line such as
//
//	image: julianh2o/myalpr:1.2.3
//
// Start and End are byte offsets into the file content.
type ImageLine struct {
	Start int
	End   int
	Tag   string
}

func imageLinePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?m)^[ \t]*(?:-[ \t]+)?image:[ \t]*["']?(` + regexp.QuoteMeta(name) +
			`):([A-Za-z0-9_][A-Za-z0-9_.-]*)["']?[ \t]*(?:#.*)?\r?$`,
	)
}

// FindImageLine returns the first line referencing name with a
// major.minor.patch tag. Lines with other tags, such as "latest", are skipped
// unless no versioned line exists, in which case the first one is returned.
func FindImageLine(content []byte, name string) (ImageLine, bool) {
	matches := imageLinePattern(name).FindAllSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return ImageLine{}, false
	}

	for _, match := range matches {
		line := imageLineAt(content, match)
		if domain.IsNumericTriple(line.Tag) {
			return line, true
		}
	}
	return imageLineAt(content, matches[0]), true
}

func imageLineAt(content []byte, match []int) ImageLine {
	return ImageLine{
		Start: match[2],
		End:   match[5],
		Tag:   string(content[match[4]:match[5]]),
	}
}

// ReplaceImageTag returns a copy of content where only the located
// "name:tag" substring is replaced.
func ReplaceImageTag(content []byte, line ImageLine, name string, tag string) []byte {
	replacement := name + ":" + tag
	out := make([]byte, 0, len(content)-(line.End-line.Start)+len(replacement))
	out = append(out, content[:line.Start]...)
	out = append(out, replacement...)
	out = append(out, content[line.End:]...)
	return out
}
