package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"testing"
)

func TestParseStem(t *testing.T) {
	cases := []struct {
		name string
		stem string
		want Key
	}{
		{"two fields", "3_2", NewKey(3, 2)},
		{"three fields", "3_2_1", NewSubsectionKey(3, 2, 1)},
		{"scenario A", "12_5", NewKey(12, 5)},
		{"scenario B", "1_2_3", NewSubsectionKey(1, 2, 3)},
		{"already padded", "03_02_01", NewSubsectionKey(3, 2, 1)},
		{"zeros", "0_0", NewKey(0, 0)},
		{"three digit chapter", "100_7", NewKey(100, 7)},
		{"subsection zero is present", "4_1_0", NewSubsectionKey(4, 1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStem(tc.stem)
			if err != nil {
				t.Fatalf("ParseStem(%q): %v", tc.stem, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseStem(%q) = %v, want %v", tc.stem, got, tc.want)
			}
		})
	}
}

func TestParseStem_NotApplicable(t *testing.T) {
	stems := []string{
		"chapter1", // scenario C: one field
		"",         // zero separators, one empty field
		"12",
		"1_2_3_4",
		"1_2_3_4_5",
		"a_b_c_d",
	}
	for _, s := range stems {
		t.Run(fmt.Sprintf("%q", s), func(t *testing.T) {
			_, err := ParseStem(s)
			if !errors.Is(err, ErrNotApplicable) {
				t.Errorf("ParseStem(%q) error = %v, want ErrNotApplicable", s, err)
			}
			var malformed *MalformedStemError
			if errors.As(err, &malformed) {
				t.Errorf("ParseStem(%q) returned a malformed error for a skip case", s)
			}
		})
	}
}

func TestParseStem_Malformed(t *testing.T) {
	cases := []struct {
		stem      string
		wantIndex int
		wantField string
	}{
		{"a_b", 0, "a"}, // scenario D
		{"3_b", 1, "b"},
		{"3_2_x", 2, "x"},
		{"3__2", 1, ""},
		{"-1_2", 0, "-1"},
		{"3_2_-4", 2, "-4"},
		{"3_2 copy", 1, "2 copy"},
		{"3.5_2", 0, "3.5"},
	}
	for _, tc := range cases {
		t.Run(tc.stem, func(t *testing.T) {
			_, err := ParseStem(tc.stem)
			if err == nil {
				t.Fatalf("ParseStem(%q) succeeded, want malformed error", tc.stem)
			}
			if errors.Is(err, ErrNotApplicable) {
				t.Fatalf("ParseStem(%q) = ErrNotApplicable, want malformed", tc.stem)
			}
			var malformed *MalformedStemError
			if !errors.As(err, &malformed) {
				t.Fatalf("ParseStem(%q) error %T is not *MalformedStemError", tc.stem, err)
			}
			if malformed.Index != tc.wantIndex || malformed.Field != tc.wantField {
				t.Errorf("field = %d %q, want %d %q", malformed.Index, malformed.Field, tc.wantIndex, tc.wantField)
			}
			if malformed.Stem != tc.stem {
				t.Errorf("Stem = %q, want %q", malformed.Stem, tc.stem)
			}
		})
	}
}

func TestParseStem_MalformedUnwrapsConversionError(t *testing.T) {
	_, err := ParseStem("x_1")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("error %v should wrap strconv.ErrSyntax", err)
	}
}

func TestParseFilename(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		want    Key
		wantErr error
	}{
		{"png two fields", "3_2.png", NewKey(3, 2), nil},
		{"png three fields", "3_2_1.png", NewSubsectionKey(3, 2, 1), nil},
		{"uppercase extension", "7_1.PNG", NewKey(7, 1), nil},
		{"only last extension stripped", "3_2.backup.png", Key{}, nil},
		{"no extension", "4_4", NewKey(4, 4), nil},
		{"trailing g is not trimmed", "3_2g.png", Key{}, nil},
		{"one field", "chapter1.png", Key{}, ErrNotApplicable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFilename(tc.file)
			switch {
			case tc.wantErr != nil:
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("ParseFilename(%q) error = %v, want %v", tc.file, err, tc.wantErr)
				}
			case tc.want == (Key{}):
				if err == nil {
					t.Errorf("ParseFilename(%q) = %v, want an error", tc.file, got)
				}
			default:
				if err != nil {
					t.Fatalf("ParseFilename(%q): %v", tc.file, err)
				}
				if !got.Equal(tc.want) {
					t.Errorf("ParseFilename(%q) = %v, want %v", tc.file, got, tc.want)
				}
			}
		})
	}
}

func TestBuildFilename(t *testing.T) {
	cases := []struct {
		key  Key
		ext  string
		want string
	}{
		{NewKey(3, 2), ".png", "03_02.png"},
		{NewSubsectionKey(3, 2, 1), ".png", "03_02_01.png"},
		{NewKey(12, 5), ".png", "12_05.png"},
		{NewSubsectionKey(1, 2, 3), ".png", "01_02_03.png"},
		{NewKey(0, 0), ".png", "00_00.png"},
		{NewKey(100, 7), ".png", "100_07.png"},
		{NewSubsectionKey(4, 123, 4567), ".png", "04_123_4567.png"},
		{NewKey(-1, 2), ".png", "-1_02.png"},
		{NewKey(5, 6), ".jpg", "05_06.jpg"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			if got := BuildFilename(tc.key, tc.ext); got != tc.want {
				t.Errorf("BuildFilename(%v) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

func TestParseBuildRoundTrip(t *testing.T) {
	for _, stem := range []string{"3_2", "3_2_1", "12_5", "1_2_3", "10_11_12", "0_9"} {
		key, err := ParseStem(stem)
		if err != nil {
			t.Fatalf("ParseStem(%q): %v", stem, err)
		}
		built := BuildFilename(key, ".png")

		again, err := ParseFilename(built)
		if err != nil {
			t.Fatalf("reparse %q: %v", built, err)
		}
		if !again.Equal(key) {
			t.Errorf("%q -> %q -> %v, want %v", stem, built, again, key)
		}
		if rebuilt := BuildFilename(again, ".png"); rebuilt != built {
			t.Errorf("rebuild of %q gave %q", built, rebuilt)
		}
	}
}

func TestOutputPath_IsFlat(t *testing.T) {
	got := OutputPath(filepath.Join("notes", "images"), NewSubsectionKey(3, 2, 1), ".png")
	want := filepath.Join("notes", "images", "03_02_01.png")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestKey_String(t *testing.T) {
	if s := NewKey(3, 2).String(); s != "(3, 2, none)" {
		t.Errorf("String() = %q", s)
	}
	if s := NewSubsectionKey(3, 2, 1).String(); s != "(3, 2, 1)" {
		t.Errorf("String() = %q", s)
	}
}

func TestKey_Equal(t *testing.T) {
	if NewKey(3, 2).Equal(NewSubsectionKey(3, 2, 0)) {
		t.Error("absent subsection must differ from zero subsection")
	}
	if !NewSubsectionKey(3, 2, 1).Equal(NewSubsectionKey(3, 2, 1)) {
		t.Error("equal keys with distinct pointers should compare equal")
	}
}

func TestClaimTracker(t *testing.T) {
	ct := NewClaimTracker()

	if owner, ok := ct.Claim("ch03/figures/3_2.png", "/out/03_02.png"); !ok || owner != "ch03/figures/3_2.png" {
		t.Errorf("first claim: owner=%q ok=%v", owner, ok)
	}
	if _, ok := ct.Claim("ch03/figures/3_2.png", "/out/03_02.png"); !ok {
		t.Error("re-claim by the same source should succeed")
	}
	owner, ok := ct.Claim("ch03b/figures/03_02.png", "/out/03_02.png")
	if ok {
		t.Error("second source should not take over the claim")
	}
	if owner != "ch03/figures/3_2.png" {
		t.Errorf("owner = %q, want the first source", owner)
	}
	if _, ok := ct.Claim("ch04/figures/4_1.png", "/out/04_01.png"); !ok {
		t.Error("unrelated destination should be claimable")
	}
	if ct.Len() != 2 {
		t.Errorf("Len = %d, want 2", ct.Len())
	}
}
