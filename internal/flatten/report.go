package flatten

import (
	"fmt"
	"io"
)

const (
	summaryHeaderConstant                 = "\nMigration summary\n"
	summaryMovedHeaderConstant            = "Moved:\n"
	summaryMovedLineTemplateConstant      = "  %s → %s\n"
	summaryConflictHeaderConstant         = "Conflicts (both copies kept):\n"
	summaryConflictLineTemplateConstant   = "  %s → %s (%s)\n"
	summarySkippedHeaderConstant          = "Skipped:\n"
	summarySkippedLineTemplateConstant    = "  %s (%s)\n"
	summaryProcessedCountTemplateConstant = "Processed: %d\n"
	summaryConflictCountTemplateConstant  = "Conflicts: %d\n"
)

// WriteSummary renders the final migration summary: the ordered move and
// conflict lists followed by the two totals. Pure formatting; conflicts are
// reported, never treated as failures.
func WriteSummary(writer io.Writer, report Report) {
	if writer == nil {
		return
	}

	fmt.Fprint(writer, summaryHeaderConstant)

	if len(report.Processed) > 0 {
		fmt.Fprint(writer, summaryMovedHeaderConstant)
		for _, outcome := range report.Processed {
			fmt.Fprintf(writer, summaryMovedLineTemplateConstant, outcome.SourcePath, outcome.TargetPath)
		}
	}

	if len(report.Conflicts) > 0 {
		fmt.Fprint(writer, summaryConflictHeaderConstant)
		for _, outcome := range report.Conflicts {
			fmt.Fprintf(writer, summaryConflictLineTemplateConstant, outcome.SourcePath, outcome.TargetPath, outcome.Reason)
		}
	}

	if len(report.Skipped) > 0 {
		fmt.Fprint(writer, summarySkippedHeaderConstant)
		for _, outcome := range report.Skipped {
			fmt.Fprintf(writer, summarySkippedLineTemplateConstant, outcome.SourcePath, outcome.Reason)
		}
	}

	fmt.Fprintf(writer, summaryProcessedCountTemplateConstant, report.ProcessedCount())
	fmt.Fprintf(writer, summaryConflictCountTemplateConstant, report.ConflictCount())
}
