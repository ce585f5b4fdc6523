package schematic

import (
	"strings"
	"unicode/utf8"
)

// Masker produces the replacement string for a maskable value. The input is
// the value's string form (see stringForm); the output is substituted into
// the serialized tree in place of the original value.
type Masker interface {
	// Mask applies masking to the value.
	Mask(value string) string
}

// lengthMasker replaces the value with a '*' run of equal length.
type lengthMasker struct{}

// LengthMasker returns the default masker: a run of '*' whose length equals
// the value's string form in runes. Length is deliberately preserved as an
// observable; the mask reveals how long the value was and nothing else.
func LengthMasker() Masker {
	return &lengthMasker{}
}

func (m *lengthMasker) Mask(value string) string {
	return strings.Repeat("*", utf8.RuneCountInString(value))
}
