package pdf

// Assemble copies every referenced page of src, in list order, into a
// freshly allocated output document. pages holds 0-indexed source page
// positions, typically produced by Resolve. The returned output contains
// exactly len(pages) pages; page i is a byte-faithful copy of source page
// pages[i]. If any page cannot be fetched the whole assembly fails with
// *SourcePageError and no output is returned.
func Assemble(src Source, pages []int) (Output, error) {
	out := src.NewOutput()

	for _, index := range pages {
		page, err := src.Page(index)
		if err != nil {
			return nil, err
		}
		out.AppendPage(page)
	}

	return out, nil
}
