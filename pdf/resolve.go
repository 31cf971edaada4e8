package pdf

// Resolve converts a validated range specification into the concrete,
// ordered list of 0-indexed source pages to copy. Keep ranges are expanded
// in declaration order, every page covered by a skip range is subtracted,
// and duplicates are dropped keeping the first occurrence. The result is
// never re-sorted: its order is the output page order.
//
// Resolve validates the specification itself, so it is safe to call
// without a prior Validate; validator errors are returned unchanged.
func Resolve(spec RangeSpec, totalPages int) ([]int, error) {
	if err := Validate(spec, totalPages); err != nil {
		return nil, err
	}

	skipped := make(map[int]bool)
	for _, r := range spec.Skip {
		for page := r.Start; page <= r.End && page <= totalPages; page++ {
			skipped[page] = true
		}
	}

	pages := []int{}
	seen := make(map[int]bool)
	for _, r := range spec.Keep {
		for page := r.Start; page <= r.End; page++ {
			if skipped[page] || seen[page] {
				continue
			}
			seen[page] = true
			pages = append(pages, page-1)
		}
	}

	return pages, nil
}

// ResolveSplit builds the common "head + skip + tail" selection: the keep
// ranges, plus everything after the last skipped page up to the end of the
// document. This mirrors the default split behavior where pages following
// the skip block are retained implicitly.
func ResolveSplit(keep, skip []PageRange, totalPages int) ([]int, error) {
	spec := RangeSpec{Keep: keep, Skip: skip}

	tailStart := 0
	for _, r := range spec.Keep {
		if r.End > tailStart {
			tailStart = r.End
		}
	}
	for _, r := range spec.Skip {
		if r.End > tailStart {
			tailStart = r.End
		}
	}

	if tailStart < totalPages {
		spec.Keep = append(append([]PageRange{}, spec.Keep...), PageRange{Start: tailStart + 1, End: totalPages})
	}

	return Resolve(spec, totalPages)
}
