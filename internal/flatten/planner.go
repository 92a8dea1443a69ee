package flatten

import (
	"path/filepath"
	"strings"
)

const (
	flattenedFileExtensionConstant = ".rs"
	conflictSuffixConstant         = ".new.rs"
)

// TargetPlan describes the computed destination layout for one module file.
type TargetPlan struct {
	ModuleDirectory string
	TargetPath      string
	ConflictPath    string
}

// TargetPlanner derives flattened destinations from module file paths.
type TargetPlanner struct{}

// NewTargetPlanner constructs a planner instance for deriving migration targets.
func NewTargetPlanner() TargetPlanner {
	return TargetPlanner{}
}

// Plan computes the deterministic target for a module file: the file moves
// one level up and takes the name of its containing directory plus the .rs
// extension, so types/admin/mod.rs becomes types/admin.rs.
func (planner TargetPlanner) Plan(sourcePath string) TargetPlan {
	cleanedSourcePath := filepath.Clean(strings.TrimSpace(sourcePath))
	moduleDirectory := filepath.Dir(cleanedSourcePath)
	moduleName := filepath.Base(moduleDirectory)
	parentDirectory := filepath.Dir(moduleDirectory)
	targetPath := filepath.Join(parentDirectory, moduleName+flattenedFileExtensionConstant)

	return TargetPlan{
		ModuleDirectory: moduleDirectory,
		TargetPath:      targetPath,
		ConflictPath:    targetPath + conflictSuffixConstant,
	}
}
