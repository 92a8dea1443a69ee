package flatten

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

const (
	fileSystemMissingMessageConstant         = "file system not configured"
	movedMessageConstant                     = "MOVED: %s → %s\n"
	conflictIdenticalMessageConstant         = "CONFLICT (identical content): %s → %s\n"
	conflictDifferentMessageConstant         = "CONFLICT (differing content): %s → %s\n"
	skipNotFoundMessageConstant              = "SKIP (not found): %s\n"
	skipFailureMessageConstant               = "SKIP (%s): %s\n"
	skipReasonNotFoundConstant               = "not found"
	conflictReasonIdenticalConstant          = "identical content"
	conflictReasonDifferentConstant          = "differing content"
	sourceReadFailureReasonTemplateConstant  = "source read failed: %v"
	targetReadFailureReasonTemplateConstant  = "target read failed: %v"
	moveFailureReasonTemplateConstant        = "move failed: %v"
	entrySkippedLogMessageConstant           = "Entry skipped"
	directoryCleanupFailedLogMessageConstant = "Module directory cleanup failed"
	directoryListingFailedLogMessageConstant = "Module directory listing failed"
	logFieldSourcePathConstant               = "source_path"
	logFieldDirectoryConstant                = "directory"
	logFieldReasonConstant                   = "reason"
)

var errFileSystemMissing = errors.New(fileSystemMissingMessageConstant)

// Dependencies supplies collaborators required by the migration service.
type Dependencies struct {
	Logger     *zap.Logger
	FileSystem FileSystem
	Output     io.Writer
}

// Options configures a migration run.
type Options struct {
	Entries []Entry
}

// Service applies the conflict-aware move over an ordered entry list.
type Service struct {
	logger     *zap.Logger
	fileSystem FileSystem
	output     io.Writer
	planner    TargetPlanner
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.FileSystem == nil {
		return nil, errFileSystemMissing
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	service := &Service{
		logger:     logger,
		fileSystem: dependencies.FileSystem,
		output:     dependencies.Output,
		planner:    NewTargetPlanner(),
	}

	return service, nil
}

// Execute processes every entry in list order. Entry-level failures never
// abort the run; only context cancellation stops it early.
func (service *Service) Execute(executionContext context.Context, options Options) (Report, error) {
	report := Report{}

	for _, entry := range options.Entries {
		if contextError := executionContext.Err(); contextError != nil {
			return report, contextError
		}
		service.processEntry(entry, &report)
	}

	return report, nil
}

func (service *Service) processEntry(entry Entry, report *Report) {
	if _, statError := service.fileSystem.Stat(entry.SourcePath); statError != nil {
		service.recordSkip(report, entry.SourcePath, skipReasonNotFoundConstant)
		service.printfOutput(skipNotFoundMessageConstant, entry.SourcePath)
		return
	}

	plan := service.planner.Plan(entry.SourcePath)

	sourceContent, sourceReadError := service.fileSystem.ReadFile(entry.SourcePath)
	if sourceReadError != nil {
		// The source vanished or became unreadable between the existence
		// check and the read. Skip the entry instead of failing the run.
		reason := fmt.Sprintf(sourceReadFailureReasonTemplateConstant, sourceReadError)
		service.recordSkip(report, entry.SourcePath, reason)
		service.printfOutput(skipFailureMessageConstant, reason, entry.SourcePath)
		return
	}

	if _, targetStatError := service.fileSystem.Stat(plan.TargetPath); targetStatError == nil {
		service.resolveConflict(entry, plan, sourceContent, report)
		return
	}

	if moveError := service.fileSystem.Move(entry.SourcePath, plan.TargetPath); moveError != nil {
		reason := fmt.Sprintf(moveFailureReasonTemplateConstant, moveError)
		service.recordSkip(report, entry.SourcePath, reason)
		service.printfOutput(skipFailureMessageConstant, reason, entry.SourcePath)
		return
	}

	report.Processed = append(report.Processed, Outcome{
		Kind:       OutcomeMoved,
		SourcePath: entry.SourcePath,
		TargetPath: plan.TargetPath,
	})
	service.printfOutput(movedMessageConstant, entry.SourcePath, plan.TargetPath)
	service.cleanupModuleDirectory(plan.ModuleDirectory)
}

// resolveConflict preserves both copies: the pre-existing target keeps its
// path and content, the source lands next to it with the .new.rs suffix.
func (service *Service) resolveConflict(entry Entry, plan TargetPlan, sourceContent []byte, report *Report) {
	targetContent, targetReadError := service.fileSystem.ReadFile(plan.TargetPath)
	if targetReadError != nil {
		reason := fmt.Sprintf(targetReadFailureReasonTemplateConstant, targetReadError)
		service.recordSkip(report, entry.SourcePath, reason)
		service.printfOutput(skipFailureMessageConstant, reason, entry.SourcePath)
		return
	}

	outcomeKind := OutcomeConflictDifferent
	conflictReason := conflictReasonDifferentConstant
	conflictMessage := conflictDifferentMessageConstant
	if bytes.Equal(sourceContent, targetContent) {
		outcomeKind = OutcomeConflictIdentical
		conflictReason = conflictReasonIdenticalConstant
		conflictMessage = conflictIdenticalMessageConstant
	}

	if moveError := service.fileSystem.Move(entry.SourcePath, plan.ConflictPath); moveError != nil {
		reason := fmt.Sprintf(moveFailureReasonTemplateConstant, moveError)
		service.recordSkip(report, entry.SourcePath, reason)
		service.printfOutput(skipFailureMessageConstant, reason, entry.SourcePath)
		return
	}

	report.Conflicts = append(report.Conflicts, Outcome{
		Kind:       outcomeKind,
		SourcePath: entry.SourcePath,
		TargetPath: plan.ConflictPath,
		Reason:     conflictReason,
	})
	service.printfOutput(conflictMessage, entry.SourcePath, plan.ConflictPath)
	service.cleanupModuleDirectory(plan.ModuleDirectory)
}

func (service *Service) cleanupModuleDirectory(moduleDirectory string) {
	directoryInfo, statError := service.fileSystem.Stat(moduleDirectory)
	if statError != nil || !directoryInfo.IsDir() {
		return
	}

	entryNames, listError := service.fileSystem.ListDirectory(moduleDirectory)
	if listError != nil {
		service.logger.Warn(
			directoryListingFailedLogMessageConstant,
			zap.String(logFieldDirectoryConstant, moduleDirectory),
			zap.Error(listError),
		)
		return
	}
	if len(entryNames) > 0 {
		return
	}

	if removeError := service.fileSystem.RemoveDirectory(moduleDirectory); removeError != nil {
		service.logger.Warn(
			directoryCleanupFailedLogMessageConstant,
			zap.String(logFieldDirectoryConstant, moduleDirectory),
			zap.Error(removeError),
		)
	}
}

func (service *Service) recordSkip(report *Report, sourcePath string, reason string) {
	report.Skipped = append(report.Skipped, Outcome{
		Kind:       OutcomeSkipped,
		SourcePath: sourcePath,
		Reason:     reason,
	})
	service.logger.Warn(
		entrySkippedLogMessageConstant,
		zap.String(logFieldSourcePathConstant, sourcePath),
		zap.String(logFieldReasonConstant, reason),
	)
}

func (service *Service) printfOutput(format string, arguments ...any) {
	if service.output == nil {
		return
	}
	fmt.Fprintf(service.output, format, arguments...)
}
