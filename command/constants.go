package command

const (
	// DefaultInputFile is used when no input positional argument is given
	DefaultInputFile = "ai_readiness_report.pdf"

	// DefaultOutputFile is used when no output positional argument is given
	DefaultOutputFile = "personalised_report.pdf"

	// DefaultFirstRange is the default block of pages to keep
	DefaultFirstRange = "1-10"

	// DefaultSkipRange is the default block of pages to remove
	DefaultSkipRange = "11-13"

	// DefaultVariantPattern names the per-profile output files
	DefaultVariantPattern = "personalised_%s_report.pdf"

	// DefaultIntroEnd is the last page of the intro block shared by all variants
	DefaultIntroEnd = 9

	// DefaultResumeFrom is the first page of the tail block shared by all variants
	DefaultResumeFrom = 14
)

// Process exit codes
const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitCancelled = 130
)

// DefaultProfiles maps the master report's profile inserts to their
// 1-indexed summary pages, in document order.
var DefaultProfiles = []string{
	"Exploring=10",
	"Building=11",
	"Integrating=12",
	"Leading=13",
}
