package command

import (
	"reflect"
	"testing"

	"pdf_splitter/pdf"
)

func TestParseRangeFlag(t *testing.T) {
	type testCase struct {
		Name     string
		Specs    []string
		Default  string
		Expected []pdf.PageRange
	}

	testCases := []testCase{
		{
			Name:     "falls back to the default",
			Specs:    nil,
			Default:  DefaultFirstRange,
			Expected: []pdf.PageRange{{Start: 1, End: 10}},
		},
		{
			Name:     "explicit value overrides the default",
			Specs:    []string{"2-4"},
			Default:  DefaultFirstRange,
			Expected: []pdf.PageRange{{Start: 2, End: 4}},
		},
		{
			Name:     "repeated flags accumulate in order",
			Specs:    []string{"5-6", "1-2"},
			Default:  DefaultFirstRange,
			Expected: []pdf.PageRange{{Start: 5, End: 6}, {Start: 1, End: 2}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ranges, err := parseRangeFlag(tc.Specs, tc.Default)
			if err != nil {
				t.Fatalf("%+v", err)
			}

			if e, g := tc.Expected, ranges; !reflect.DeepEqual(e, g) {
				t.Errorf("ranges: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestParseProfiles(t *testing.T) {
	profiles, err := parseProfiles(DefaultProfiles)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	expected := []pdf.Profile{
		{Name: "Exploring", SummaryPage: 10},
		{Name: "Building", SummaryPage: 11},
		{Name: "Integrating", SummaryPage: 12},
		{Name: "Leading", SummaryPage: 13},
	}
	if e, g := expected, profiles; !reflect.DeepEqual(e, g) {
		t.Errorf("profiles: expected '%v', got '%v'", e, g)
	}
}

func TestParseProfilesInvalid(t *testing.T) {
	specs := []string{
		"Exploring",
		"=10",
		"Exploring=abc",
		"Exploring=0",
	}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			if _, err := parseProfiles([]string{spec}); err == nil {
				t.Errorf("expected error for '%s', got nil", spec)
			}
		})
	}
}
