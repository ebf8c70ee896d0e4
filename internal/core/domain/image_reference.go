package domain

import (
	"fmt"

	"github.com/distribution/reference"
)

// ImageReference pairs a repository name with a tag, e.g. julianh2o/myalpr:1.2.4.
// Name is kept exactly as written in the configuration file.
type ImageReference struct {
	Name string
	Tag  string
}

// ValidateImageName checks that name is a repository name without tag or digest.
func ValidateImageName(name string) error {
	named, err := reference.ParseNormalizedNamed(name)
	if err != nil {
		return fmt.Errorf("invalid image name %q: %w", name, err)
	}
	if !reference.IsNameOnly(named) {
		return fmt.Errorf("image name %q must not carry a tag or digest", name)
	}
	return nil
}

func NewImageReference(name string, tag string) (ImageReference, error) {
	if err := ValidateImageName(name); err != nil {
		return ImageReference{}, err
	}
	named, err := reference.ParseNormalizedNamed(name)
	if err != nil {
		return ImageReference{}, err
	}
	if _, err := reference.WithTag(named, tag); err != nil {
		return ImageReference{}, fmt.Errorf("invalid tag %q for %s: %w", tag, name, err)
	}

	return ImageReference{Name: name, Tag: tag}, nil
}

func (r ImageReference) String() string {
	return r.Name + ":" + r.Tag
}
