package pdf

import (
	"bytes"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Page is an opaque handle to a single page of a source document.
type Page struct {
	nr int // 1-indexed page number inside the source
}

// Source is a read-only handle on an opened paginated document. The
// document is fully indexed at open time; Source never mutates it.
type Source interface {
	TotalPages() int
	// Page fetches the page at the given 0-indexed position. Unreadable
	// pages fail with *SourcePageError carrying the index.
	Page(index int) (Page, error)
	// NewOutput allocates an empty output document that accepts pages
	// from this source.
	NewOutput() Output
}

// Output accumulates pages in append order. Nothing is serialized until
// WriteTo, which finalizes the document in memory before emitting a single
// byte, so a failed finalize never leaves partial output behind.
type Output interface {
	AppendPage(Page)
	PageCount() int
	WriteTo(w io.Writer) (int64, error)
}

type codecSource struct {
	ctx *model.Context
}

// OpenSource opens and fully indexes the document at path. The file handle
// is released before OpenSource returns; the page index lives in memory.
func OpenSource(fs afero.Fs, path string) (Source, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open '%s'", path)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, errors.Wrapf(err, "could not read document '%s'", path)
	}

	return &codecSource{ctx: ctx}, nil
}

func (s *codecSource) TotalPages() int {
	return s.ctx.PageCount
}

func (s *codecSource) Page(index int) (Page, error) {
	if index < 0 || index >= s.ctx.PageCount {
		return Page{}, &SourcePageError{Index: index, Err: errors.Errorf("index out of bounds (total pages: %d)", s.ctx.PageCount)}
	}

	nr := index + 1
	if _, err := api.ExtractPage(s.ctx, nr); err != nil {
		return Page{}, &SourcePageError{Index: index, Err: err}
	}

	return Page{nr: nr}, nil
}

func (s *codecSource) NewOutput() Output {
	return &codecOutput{src: s}
}

type codecOutput struct {
	src *codecSource
	nrs []int
}

func (o *codecOutput) AppendPage(p Page) {
	o.nrs = append(o.nrs, p.nr)
}

func (o *codecOutput) PageCount() int {
	return len(o.nrs)
}

// WriteTo extracts the appended pages from the source, in append order,
// and serializes the resulting document to w. Serialization happens into
// an in-memory buffer first: w only sees bytes once the whole document has
// been produced successfully.
func (o *codecOutput) WriteTo(w io.Writer) (int64, error) {
	extracted, err := pdfcpu.ExtractPages(o.src.ctx, o.nrs, false)
	if err != nil {
		return 0, errors.Wrap(err, "could not assemble output document")
	}

	var buf bytes.Buffer
	if err := api.WriteContext(extracted, &buf); err != nil {
		return 0, errors.Wrap(err, "could not serialize output document")
	}

	n, err := buf.WriteTo(w)
	if err != nil {
		return n, errors.WithStack(err)
	}

	return n, nil
}
