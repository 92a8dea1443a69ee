package flatten

import "io/fs"

// OutcomeKind classifies the result of processing one migration entry.
type OutcomeKind string

// Supported outcome classifications.
const (
	OutcomeMoved             OutcomeKind = "moved"
	OutcomeConflictIdentical OutcomeKind = "conflict_identical"
	OutcomeConflictDifferent OutcomeKind = "conflict_different"
	OutcomeSkipped           OutcomeKind = "skipped"
)

// Entry names one module file scheduled for migration.
type Entry struct {
	SourcePath string
}

// Outcome records what happened to a single entry. TargetPath holds the
// final on-disk location, which for conflicts carries the .new.rs suffix.
type Outcome struct {
	Kind       OutcomeKind
	SourcePath string
	TargetPath string
	Reason     string
}

// Report accumulates per-entry outcomes, preserving input order.
type Report struct {
	Processed []Outcome
	Conflicts []Outcome
	Skipped   []Outcome
}

// ProcessedCount reports how many entries moved cleanly.
func (report Report) ProcessedCount() int {
	return len(report.Processed)
}

// ConflictCount reports how many entries required conflict resolution.
func (report Report) ConflictCount() int {
	return len(report.Conflicts)
}

// FileSystem exposes the filesystem operations required by the migration service.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	// Move relocates sourcePath to targetPath and fails when targetPath
	// already exists.
	Move(sourcePath string, targetPath string) error
	ListDirectory(path string) ([]string, error)
	RemoveDirectory(path string) error
}
