package pdf

// Validate checks a range specification against the actual page count of
// the source document. It is a pure check: no document access, no side
// effects. Every violation carries the offending bounds and totalPages.
//
// Skip ranges that lie entirely past the end of the document are accepted:
// they simply have nothing to remove.
func Validate(spec RangeSpec, totalPages int) error {
	for _, r := range spec.Keep {
		if r.Start < 1 {
			return &RangeError{Start: r.Start, End: r.End, TotalPages: totalPages, Reason: "start must be >= 1"}
		}
		if r.Start > r.End {
			return &RangeError{Start: r.Start, End: r.End, TotalPages: totalPages, Reason: "start exceeds end"}
		}
		if totalPages == 0 {
			return &RangeError{Start: r.Start, End: r.End, TotalPages: totalPages, Reason: "document has no pages"}
		}
		if r.End > totalPages {
			return &RangeError{Start: r.Start, End: r.End, TotalPages: totalPages, Reason: "end exceeds total pages"}
		}
	}

	for _, r := range spec.Skip {
		if r.Start < 1 {
			return &RangeError{Start: r.Start, End: r.End, TotalPages: totalPages, Reason: "start must be >= 1"}
		}
		if r.Start > r.End {
			return &RangeError{Start: r.Start, End: r.End, TotalPages: totalPages, Reason: "start exceeds end"}
		}
	}

	return nil
}
