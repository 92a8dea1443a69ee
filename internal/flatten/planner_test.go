package flatten_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/modflat/internal/flatten"
)

func TestTargetPlannerDerivations(testInstance *testing.T) {
	testCases := []struct {
		name                    string
		sourcePath              string
		expectedModuleDirectory string
		expectedTargetPath      string
		expectedConflictPath    string
	}{
		{
			name:                    "absolute_nested_module",
			sourcePath:              "/repo/src/types/admin/mod.rs",
			expectedModuleDirectory: "/repo/src/types/admin",
			expectedTargetPath:      "/repo/src/types/admin.rs",
			expectedConflictPath:    "/repo/src/types/admin.rs.new.rs",
		},
		{
			name:                    "relative_crate_module",
			sourcePath:              "crates/doubao/src/spec/asr/mod.rs",
			expectedModuleDirectory: "crates/doubao/src/spec/asr",
			expectedTargetPath:      "crates/doubao/src/spec/asr.rs",
			expectedConflictPath:    "crates/doubao/src/spec/asr.rs.new.rs",
		},
		{
			name:                    "shallow_module",
			sourcePath:              "a/b/mod.rs",
			expectedModuleDirectory: "a/b",
			expectedTargetPath:      "a/b.rs",
			expectedConflictPath:    "a/b.rs.new.rs",
		},
		{
			name:                    "surrounding_whitespace_trimmed",
			sourcePath:              "  a/b/mod.rs  ",
			expectedModuleDirectory: "a/b",
			expectedTargetPath:      "a/b.rs",
			expectedConflictPath:    "a/b.rs.new.rs",
		},
		{
			name:                    "redundant_separators_cleaned",
			sourcePath:              "/repo//src/types/admin//mod.rs",
			expectedModuleDirectory: "/repo/src/types/admin",
			expectedTargetPath:      "/repo/src/types/admin.rs",
			expectedConflictPath:    "/repo/src/types/admin.rs.new.rs",
		},
	}

	planner := flatten.NewTargetPlanner()

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			plan := planner.Plan(testCase.sourcePath)
			require.Equal(testInstance, testCase.expectedModuleDirectory, plan.ModuleDirectory)
			require.Equal(testInstance, testCase.expectedTargetPath, plan.TargetPath)
			require.Equal(testInstance, testCase.expectedConflictPath, plan.ConflictPath)
		})
	}
}
