package pdf

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Profile names one personalized variant of a master document and the
// 1-indexed page holding its profile summary.
type Profile struct {
	Name        string
	SummaryPage int
}

// VariantsOptions configures a batch run producing one personalized
// document per profile. Every variant shares the intro block (pages 1 to
// IntroEnd) and the tail block (ResumeFrom to the end); between the two,
// only the profile's own summary page is kept.
type VariantsOptions struct {
	InputPath     string
	OutputPattern string // must contain %s, replaced by the profile name
	IntroEnd      int
	ResumeFrom    int
	Profiles      []Profile
}

// VariantSpec builds the keep set for one profile against a document of
// totalPages pages: shared intro, the profile's summary page, shared tail.
func VariantSpec(profile Profile, introEnd, resumeFrom, totalPages int) RangeSpec {
	keep := []PageRange{
		{Start: 1, End: introEnd},
		{Start: profile.SummaryPage, End: profile.SummaryPage},
	}

	if resumeFrom <= totalPages {
		keep = append(keep, PageRange{Start: resumeFrom, End: totalPages})
	}

	return RangeSpec{Keep: keep}
}

// GenerateVariants produces one output document per profile. The source is
// opened and indexed once and shared across variants. Variants are
// isolated from each other: one profile failing does not abort the rest,
// and the aggregate error names every profile that failed.
func GenerateVariants(fs afero.Fs, opts VariantsOptions) error {
	if !strings.Contains(opts.OutputPattern, "%s") {
		return errors.Errorf("output pattern '%s' must contain %%s for the profile name", opts.OutputPattern)
	}

	if len(opts.Profiles) == 0 {
		return errors.New("no profiles specified")
	}

	if err := ValidateInputFile(fs, opts.InputPath); err != nil {
		return err
	}

	slog.Info("reading input document", "path", opts.InputPath)

	src, err := OpenSource(fs, opts.InputPath)
	if err != nil {
		return err
	}

	return generateVariants(fs, src, opts)
}

func generateVariants(fs afero.Fs, src Source, opts VariantsOptions) error {
	var failed []string

	for _, profile := range opts.Profiles {
		outPath := fmt.Sprintf(opts.OutputPattern, profile.Name)

		if err := generateVariant(fs, src, profile, opts, outPath); err != nil {
			slog.Error("could not generate variant", "profile", profile.Name, "error", err)
			failed = append(failed, profile.Name)
			continue
		}

		slog.Info("generated variant", "profile", profile.Name, "path", outPath)
	}

	if len(failed) > 0 {
		return errors.Errorf("%d of %d variants failed (%s)", len(failed), len(opts.Profiles), strings.Join(failed, ", "))
	}

	return nil
}

func generateVariant(fs afero.Fs, src Source, profile Profile, opts VariantsOptions, outPath string) error {
	spec := VariantSpec(profile, opts.IntroEnd, opts.ResumeFrom, src.TotalPages())

	pages, err := Resolve(spec, src.TotalPages())
	if err != nil {
		return err
	}

	out, err := Assemble(src, pages)
	if err != nil {
		return err
	}

	if _, err := writeOutput(fs, outPath, out); err != nil {
		return err
	}

	return nil
}
