package command

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"pdf_splitter/pdf"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

const (
	flagFirstRange = "first-range"
	flagSkipRange  = "skip-range"
	flagQuiet      = "quiet"
	flagDebug      = "debug"
	flagProfile    = "profile"
	flagIntroEnd   = "intro-end"
	flagResumeFrom = "resume-from"
	flagPattern    = "pattern"
)

// Main runs the application and returns its process exit code.
func Main(args []string) int {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		fmt.Fprintln(os.Stderr, "operation cancelled")
		os.Exit(ExitCancelled)
	}()

	if err := NewApp().Run(args); err != nil {
		return ExitError
	}

	return ExitSuccess
}

// NewApp builds the command surface. The root action performs a single
// split; the variants command generates one personalized document per
// profile.
func NewApp() *cli.App {
	app := &cli.App{
		Name:      "pdfsplit",
		Usage:     "Extract page ranges from a PDF document into a new document",
		ArgsUsage: "[input_file] [output_file]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  flagFirstRange,
				Usage: fmt.Sprintf("Page range to keep, 1-indexed inclusive, e.g. '1-10' or '1-10,12' (default: %s)", DefaultFirstRange),
			},
			&cli.StringSliceFlag{
				Name:  flagSkipRange,
				Usage: fmt.Sprintf("Page range to remove, 1-indexed inclusive (default: %s)", DefaultSkipRange),
			},
			&cli.BoolFlag{
				Name:    flagQuiet,
				Aliases: []string{"q"},
				Usage:   "Suppress progress messages",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "Print errors with stack traces",
			},
		},
		Before: func(cCtx *cli.Context) error {
			level := slog.LevelInfo
			if cCtx.Bool(flagQuiet) {
				level = slog.LevelWarn
			}
			if cCtx.Bool(flagDebug) {
				level = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)

			return nil
		},
		Action: splitAction,
		Commands: []*cli.Command{
			variantsCommand(),
		},
	}

	app.ExitErrHandler = func(cCtx *cli.Context, err error) {
		if err == nil {
			return
		}

		if cCtx.Bool(flagDebug) {
			slog.Error(fmt.Sprintf("%+v", err))
		} else {
			slog.Error(err.Error())
		}
	}

	return app
}

func splitAction(cCtx *cli.Context) error {
	inputPath := cCtx.Args().Get(0)
	if inputPath == "" {
		inputPath = DefaultInputFile
	}

	outputPath := cCtx.Args().Get(1)
	if outputPath == "" {
		outputPath = DefaultOutputFile
	}

	keep, err := parseRangeFlag(cCtx.StringSlice(flagFirstRange), DefaultFirstRange)
	if err != nil {
		return errors.Wrapf(err, "invalid --%s", flagFirstRange)
	}

	skip, err := parseRangeFlag(cCtx.StringSlice(flagSkipRange), DefaultSkipRange)
	if err != nil {
		return errors.Wrapf(err, "invalid --%s", flagSkipRange)
	}

	_, err = pdf.Split(afero.NewOsFs(), pdf.SplitOptions{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Keep:       keep,
		Skip:       skip,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func variantsCommand() *cli.Command {
	return &cli.Command{
		Name:      "variants",
		Usage:     "Generate one personalized document per profile from a master document",
		ArgsUsage: "[input_file]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    flagProfile,
				Aliases: []string{"p"},
				Usage:   fmt.Sprintf("Profile to generate as NAME=PAGE, where PAGE is the profile's 1-indexed summary page (default: %s)", strings.Join(DefaultProfiles, ", ")),
			},
			&cli.IntFlag{
				Name:  flagIntroEnd,
				Value: DefaultIntroEnd,
				Usage: "Last page of the intro block shared by all variants",
			},
			&cli.IntFlag{
				Name:  flagResumeFrom,
				Value: DefaultResumeFrom,
				Usage: "First page of the tail block shared by all variants",
			},
			&cli.StringFlag{
				Name:  flagPattern,
				Value: DefaultVariantPattern,
				Usage: "Output filename pattern, %s is replaced by the profile name",
			},
		},
		Action: func(cCtx *cli.Context) error {
			inputPath := cCtx.Args().Get(0)
			if inputPath == "" {
				inputPath = DefaultInputFile
			}

			specs := cCtx.StringSlice(flagProfile)
			if len(specs) == 0 {
				specs = DefaultProfiles
			}

			profiles, err := parseProfiles(specs)
			if err != nil {
				return errors.Wrapf(err, "invalid --%s", flagProfile)
			}

			err = pdf.GenerateVariants(afero.NewOsFs(), pdf.VariantsOptions{
				InputPath:     inputPath,
				OutputPattern: cCtx.String(flagPattern),
				IntroEnd:      cCtx.Int(flagIntroEnd),
				ResumeFrom:    cCtx.Int(flagResumeFrom),
				Profiles:      profiles,
			})
			if err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

// parseRangeFlag parses repeated range flag values, falling back to the
// documented default when the flag was not given.
func parseRangeFlag(specs []string, defaultSpec string) ([]pdf.PageRange, error) {
	if len(specs) == 0 {
		specs = []string{defaultSpec}
	}
	return pdf.ParseRangeSpecs(specs)
}

// parseProfiles parses NAME=PAGE profile specifications.
func parseProfiles(specs []string) ([]pdf.Profile, error) {
	profiles := make([]pdf.Profile, 0, len(specs))

	for _, spec := range specs {
		name, pageStr, found := strings.Cut(spec, "=")
		if !found || name == "" {
			return nil, errors.Errorf("profile '%s' is not of the form NAME=PAGE", spec)
		}

		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, errors.Errorf("profile '%s' has an invalid page number", spec)
		}

		if page < 1 {
			return nil, errors.Errorf("profile '%s': page numbers must be positive", spec)
		}

		profiles = append(profiles, pdf.Profile{Name: name, SummaryPage: page})
	}

	return profiles, nil
}
