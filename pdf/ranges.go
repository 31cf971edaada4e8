package pdf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PageRange is an inclusive range of 1-indexed page numbers.
type PageRange struct {
	Start int
	End   int
}

func (r PageRange) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Pages returns the number of pages covered by the range.
func (r PageRange) Pages() int {
	return r.End - r.Start + 1
}

// Contains reports whether the 1-indexed page number falls inside the range.
func (r PageRange) Contains(page int) bool {
	return page >= r.Start && page <= r.End
}

// RangeSpec describes which pages of a source document to retain (Keep)
// and which to drop (Skip), both in user-facing 1-indexed terms. Keep
// ranges are ordered: their declaration order determines output page order.
type RangeSpec struct {
	Keep []PageRange
	Skip []PageRange
}

var whitespace = regexp.MustCompile(`\s`)

// ParseRangeSpec parses a page range specification string and returns the
// ranges in declaration order. Supported formats: "3", "1-10", "1:10",
// "1-10,12,20-25". Declaration order is preserved; it is significant for
// keep ranges because output pages follow it.
func ParseRangeSpec(spec string) ([]PageRange, error) {
	if spec == "" {
		return nil, fmt.Errorf("empty page range specification")
	}

	spec = whitespace.ReplaceAllString(spec, "")

	var ranges []PageRange
	for _, part := range strings.Split(spec, ",") {
		sep := ""
		switch {
		case strings.Contains(part, "-"):
			sep = "-"
		case strings.Contains(part, ":"):
			sep = ":"
		}

		if sep == "" {
			// Single page like "3"
			page, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid page number: %s", part)
			}
			if page < 1 {
				return nil, fmt.Errorf("page numbers must be positive, got %d", page)
			}
			ranges = append(ranges, PageRange{Start: page, End: page})
			continue
		}

		bounds := strings.Split(part, sep)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid range: %s", part)
		}

		start, err := strconv.Atoi(bounds[0])
		if err != nil {
			return nil, fmt.Errorf("invalid start page: %s", bounds[0])
		}

		end, err := strconv.Atoi(bounds[1])
		if err != nil {
			return nil, fmt.Errorf("invalid end page: %s", bounds[1])
		}

		if start < 1 {
			return nil, fmt.Errorf("page numbers must be positive, got %d", start)
		}

		if start > end {
			return nil, fmt.Errorf("invalid range: start > end (%d > %d)", start, end)
		}

		ranges = append(ranges, PageRange{Start: start, End: end})
	}

	return ranges, nil
}

// ParseRangeSpecs parses multiple specification strings into a single
// ordered range list.
func ParseRangeSpecs(specs []string) ([]PageRange, error) {
	var ranges []PageRange
	for _, spec := range specs {
		parsed, err := ParseRangeSpec(spec)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, parsed...)
	}
	return ranges, nil
}
