package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion_Valid(t *testing.T) {
	tests := []struct {
		input string
		major uint64
		minor uint64
		patch uint64
	}{
		{"0.0.0", 0, 0, 0},
		{"1.2.3", 1, 2, 3},
		{"10.20.300", 10, 20, 300},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			version, err := ParseVersion(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.major, version.Major())
			assert.Equal(t, tt.minor, version.Minor())
			assert.Equal(t, tt.patch, version.Patch())
			assert.Equal(t, tt.input, version.String())
		})
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"two components", "1.2"},
		{"four components", "1.2.3.4"},
		{"non numeric patch", "1.2.x"},
		{"negative component", "1.-2.3"},
		{"v prefix", "v1.2.3"},
		{"pre-release", "1.2.3-rc.1"},
		{"build metadata", "1.2.3+build"},
		{"empty component", "1..3"},
		{"overflow", "1.2.18446744073709551616"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVersion(tt.input)

			var formatErr *VersionFormatError
			require.True(t, errors.As(err, &formatErr), "expected VersionFormatError, got %v", err)
			assert.Equal(t, tt.input, formatErr.Value)
			assert.Equal(t, StepParse, formatErr.Step())
		})
	}
}

func TestVersion_NextPatchIncrementsPatchOnly(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0.0.0", "0.0.1"},
		{"1.2.3", "1.2.4"},
		{"1.9.9", "1.9.10"},
		{"4.0.99", "4.0.100"},
		{"1.2.09", "1.2.10"},
		{"01.2.3", "1.2.4"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			version, err := ParseVersion(tt.input)
			require.NoError(t, err)

			next, err := version.NextPatch()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, next.String())
			assert.Equal(t, version.Major(), next.Major())
			assert.Equal(t, version.Minor(), next.Minor())
			assert.Equal(t, version.Patch()+1, next.Patch())
		})
	}
}

func TestParseVersion_LeadingZeros(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"01.2.3", "1.2.3"},
		{"1.02.3", "1.2.3"},
		{"1.2.03", "1.2.3"},
		{"00.00.00", "0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			version, err := ParseVersion(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, version.String())
		})
	}
}

func TestIsNumericTriple(t *testing.T) {
	assert.True(t, IsNumericTriple("1.2.3"))
	assert.True(t, IsNumericTriple("01.2.03"))
	assert.False(t, IsNumericTriple("latest"))
	assert.False(t, IsNumericTriple("v1.2.3"))
	assert.False(t, IsNumericTriple("1.2"))
	assert.False(t, IsNumericTriple("1.2.3-rc.1"))
}

func TestVersion_NextPatchRejectsOverflow(t *testing.T) {
	version, err := ParseVersion("1.2.18446744073709551615")
	require.NoError(t, err)

	_, err = version.NextPatch()

	var formatErr *VersionFormatError
	assert.ErrorAs(t, err, &formatErr)
}
