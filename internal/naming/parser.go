package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// FieldSep separates the numeric fields of a figure stem.
const FieldSep = "_"

// ErrNotApplicable reports a stem that does not have two or three fields.
// The file is simply not a numbered figure and should be skipped.
var ErrNotApplicable = errors.New("not a chapter_section[_subsection] name")

// MalformedStemError reports a stem with the right field count where a
// field is not a non-negative integer.
type MalformedStemError struct {
	Stem  string
	Field string
	Index int // zero-based field position
	Err   error
}

func (e *MalformedStemError) Error() string {
	return fmt.Sprintf("malformed figure name %q: field %d (%q) is not a non-negative integer", e.Stem, e.Index+1, e.Field)
}

func (e *MalformedStemError) Unwrap() error { return e.Err }

var errNegative = errors.New("negative value")

// Key is the parsed chapter, section and optional subsection of a figure.
// Subsection is nil when the stem had only two fields.
type Key struct {
	Chapter    int
	Section    int
	Subsection *int
}

// NewKey builds a two-field key.
func NewKey(chapter, section int) Key {
	return Key{Chapter: chapter, Section: section}
}

// NewSubsectionKey builds a three-field key.
func NewSubsectionKey(chapter, section, subsection int) Key {
	return Key{Chapter: chapter, Section: section, Subsection: &subsection}
}

// HasSubsection reports whether the key carries a third field.
func (k Key) HasSubsection() bool { return k.Subsection != nil }

// Equal compares field values, including subsection presence.
func (k Key) Equal(o Key) bool {
	if k.Chapter != o.Chapter || k.Section != o.Section {
		return false
	}
	if k.HasSubsection() != o.HasSubsection() {
		return false
	}
	return !k.HasSubsection() || *k.Subsection == *o.Subsection
}

func (k Key) String() string {
	if k.HasSubsection() {
		return fmt.Sprintf("(%d, %d, %d)", k.Chapter, k.Section, *k.Subsection)
	}
	return fmt.Sprintf("(%d, %d, none)", k.Chapter, k.Section)
}

// ParseStem interprets an extension-less filename as two or three integer
// fields. It returns [ErrNotApplicable] for any other field count and a
// *[MalformedStemError] when a field does not convert.
func ParseStem(stem string) (Key, error) {
	parts := strings.Split(stem, FieldSep)
	if len(parts) < 2 || len(parts) > 3 {
		return Key{}, ErrNotApplicable
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err == nil && n < 0 {
			err = errNegative
		}
		if err != nil {
			return Key{}, &MalformedStemError{Stem: stem, Field: p, Index: i, Err: err}
		}
		nums[i] = n
	}

	if len(nums) == 3 {
		return NewSubsectionKey(nums[0], nums[1], nums[2]), nil
	}
	return NewKey(nums[0], nums[1]), nil
}

// ParseFilename strips the extension from name (a base name, not a path)
// and parses the remaining stem.
func ParseFilename(name string) (Key, error) {
	return ParseStem(Stem(name))
}

// Stem returns name without its final extension.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
