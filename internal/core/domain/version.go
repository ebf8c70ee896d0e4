package domain

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is a release version of exactly three numeric components.
type Version struct {
	semver *semver.Version
}

var numericTriple = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)

var errNotNumericTriple = errors.New("expected major.minor.patch with numeric components")
var errPatchOverflow = errors.New("patch component cannot be incremented further")

// IsNumericTriple reports whether value has the form major.minor.patch with
// decimal components.
func IsNumericTriple(value string) bool {
	return numericTriple.MatchString(value)
}

// ParseVersion accepts "major.minor.patch" only. Leading zeros are allowed and
// dropped; a "v" prefix, pre-release and build metadata are rejected.
func ParseVersion(value string) (Version, error) {
	if !IsNumericTriple(value) {
		return Version{}, &VersionFormatError{Value: value, Err: errNotNumericTriple}
	}
	var components [3]uint64
	for i, part := range strings.Split(value, ".") {
		component, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Version{}, &VersionFormatError{Value: value, Err: err}
		}
		components[i] = component
	}
	parsed := semver.New(components[0], components[1], components[2], "", "")

	return Version{semver: parsed}, nil
}

func (v Version) Major() uint64 {
	return v.semver.Major()
}

func (v Version) Minor() uint64 {
	return v.semver.Minor()
}

func (v Version) Patch() uint64 {
	return v.semver.Patch()
}

// NextPatch returns major.minor.(patch+1). Minor and major never change.
func (v Version) NextPatch() (Version, error) {
	if v.semver.Patch() == math.MaxUint64 {
		return Version{}, &VersionFormatError{Value: v.String(), Err: errPatchOverflow}
	}
	next := v.semver.IncPatch()
	return Version{semver: &next}, nil
}

func (v Version) String() string {
	if v.semver == nil {
		return ""
	}
	return v.semver.String()
}
