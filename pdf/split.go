package pdf

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// SplitOptions configures a single split invocation. Ranges are 1-indexed
// inclusive; pages following the last kept or skipped page are retained
// implicitly (the "head + skip + tail" behavior).
type SplitOptions struct {
	InputPath  string
	OutputPath string
	Keep       []PageRange
	Skip       []PageRange
}

// SplitResult reports what a successful split produced.
type SplitResult struct {
	TotalPages   int
	PagesWritten int
	BytesWritten int64
}

// Split runs the whole pipeline against fs: validate the input file,
// open it, resolve the page selection, assemble the output document and
// write it to OutputPath. All validation happens before any page is
// copied; a failure never leaves a partial output file behind.
func Split(fs afero.Fs, opts SplitOptions) (*SplitResult, error) {
	if err := ValidateInputFile(fs, opts.InputPath); err != nil {
		return nil, err
	}

	slog.Info("reading input document", "path", opts.InputPath)

	src, err := OpenSource(fs, opts.InputPath)
	if err != nil {
		return nil, err
	}

	totalPages := src.TotalPages()
	slog.Info("input document indexed", "totalPages", totalPages)

	pages, err := ResolveSplit(opts.Keep, opts.Skip, totalPages)
	if err != nil {
		return nil, err
	}

	out, err := Assemble(src, pages)
	if err != nil {
		return nil, err
	}

	written, err := writeOutput(fs, opts.OutputPath, out)
	if err != nil {
		return nil, err
	}

	slog.Info("wrote output document",
		"path", opts.OutputPath,
		"pages", out.PageCount(),
		"size", humanize.Bytes(uint64(written)),
	)

	return &SplitResult{
		TotalPages:   totalPages,
		PagesWritten: out.PageCount(),
		BytesWritten: written,
	}, nil
}

// ValidateInputFile checks that path points at a readable PDF document:
// it must exist, be a regular file, carry the .pdf extension and actually
// contain PDF bytes. The content check sniffs the file header instead of
// trusting the extension alone.
func ValidateInputFile(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrInputNotFound, "'%s'", path)
		}
		return errors.WithStack(err)
	}

	if info.IsDir() {
		return errors.Wrapf(ErrInvalidInputType, "'%s' is a directory", path)
	}

	if !strings.EqualFold(filepath.Ext(path), PDFExtension) {
		return errors.Wrapf(ErrInvalidInputType, "'%s' does not have a %s extension", path, PDFExtension)
	}

	f, err := fs.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return errors.WithStack(err)
	}

	if !mtype.Is(PDFMimeType) {
		return errors.Wrapf(ErrInvalidInputType, "'%s' detected as %s", path, mtype)
	}

	return nil
}

// writeOutput persists an assembled output document. The document is
// finalized in memory by out.WriteTo, written to a temporary name in the
// destination directory and only renamed into place after a successful
// close, so an aborted invocation never leaves a truncated file at path.
func writeOutput(fs afero.Fs, path string, out Output) (int64, error) {
	tmpPath := path + ".tmp"

	f, err := fs.Create(tmpPath)
	if err != nil {
		return 0, &OutputWriteError{Path: path, Err: err}
	}

	written, err := out.WriteTo(f)
	if err != nil {
		f.Close()
		fs.Remove(tmpPath)
		return 0, &OutputWriteError{Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		fs.Remove(tmpPath)
		return 0, &OutputWriteError{Path: path, Err: err}
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		fs.Remove(tmpPath)
		return 0, &OutputWriteError{Path: path, Err: err}
	}

	return written, nil
}
