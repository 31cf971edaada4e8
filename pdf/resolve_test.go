package pdf

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	type testCase struct {
		Name       string
		Spec       RangeSpec
		TotalPages int
		Expected   []int
	}

	testCases := []testCase{
		{
			Name: "head and tail around a skip block",
			Spec: RangeSpec{
				Keep: []PageRange{{Start: 1, End: 10}, {Start: 11, End: 20}},
				Skip: []PageRange{{Start: 11, End: 13}},
			},
			TotalPages: 20,
			Expected:   []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 13, 14, 15, 16, 17, 18, 19},
		},
		{
			Name: "skip entirely past the document is a no-op",
			Spec: RangeSpec{
				Keep: []PageRange{{Start: 1, End: 10}},
				Skip: []PageRange{{Start: 11, End: 13}},
			},
			TotalPages: 10,
			Expected:   []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			Name: "overlapping keep ranges dedup at first occurrence",
			Spec: RangeSpec{
				Keep: []PageRange{{Start: 1, End: 10}, {Start: 1, End: 10}},
			},
			TotalPages: 10,
			Expected:   []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			Name: "keep ranges out of ascending order keep declaration order",
			Spec: RangeSpec{
				Keep: []PageRange{{Start: 5, End: 6}, {Start: 1, End: 2}},
			},
			TotalPages: 10,
			Expected:   []int{4, 5, 0, 1},
		},
		{
			Name: "keep range entirely consumed by a skip range",
			Spec: RangeSpec{
				Keep: []PageRange{{Start: 3, End: 5}},
				Skip: []PageRange{{Start: 1, End: 8}},
			},
			TotalPages: 10,
			Expected:   []int{},
		},
		{
			Name:       "zero pages yields an empty list",
			Spec:       RangeSpec{},
			TotalPages: 0,
			Expected:   []int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			pages, err := Resolve(tc.Spec, tc.TotalPages)
			if err != nil {
				t.Fatalf("%+v", err)
			}

			if e, g := tc.Expected, pages; !reflect.DeepEqual(e, g) {
				t.Errorf("pages: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestResolveReturnsValidatorErrors(t *testing.T) {
	spec := RangeSpec{Keep: []PageRange{{Start: 1, End: 15}}}

	_, err := Resolve(spec, 10)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected *RangeError, got %T", err)
	}
}

func TestResolveSplit(t *testing.T) {
	type testCase struct {
		Name       string
		Keep       []PageRange
		Skip       []PageRange
		TotalPages int
		Expected   []int
	}

	testCases := []testCase{
		{
			// The canonical profile-insert split: keep 1-10, drop 11-13,
			// the tail 14-20 is retained implicitly.
			Name:       "implicit tail after skip block",
			Keep:       []PageRange{{Start: 1, End: 10}},
			Skip:       []PageRange{{Start: 11, End: 13}},
			TotalPages: 20,
			Expected:   []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 13, 14, 15, 16, 17, 18, 19},
		},
		{
			Name:       "skip past the end leaves the keep block unchanged",
			Keep:       []PageRange{{Start: 1, End: 10}},
			Skip:       []PageRange{{Start: 11, End: 13}},
			TotalPages: 10,
			Expected:   []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			Name:       "no skip keeps everything from the keep block onwards",
			Keep:       []PageRange{{Start: 1, End: 3}},
			TotalPages: 5,
			Expected:   []int{0, 1, 2, 3, 4},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			pages, err := ResolveSplit(tc.Keep, tc.Skip, tc.TotalPages)
			if err != nil {
				t.Fatalf("%+v", err)
			}

			if e, g := tc.Expected, pages; !reflect.DeepEqual(e, g) {
				t.Errorf("pages: expected '%v', got '%v'", e, g)
			}
		})
	}
}
