package flatten_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/modflat/internal/flatten"
)

func buildTestCommand(testInstance *testing.T, fileSystem flatten.FileSystem) (*cobra.Command, *bytes.Buffer) {
	testInstance.Helper()

	builder := flatten.CommandBuilder{FileSystem: fileSystem}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(outputBuffer)

	return command, outputBuffer
}

func TestCommandFlattensPositionalArguments(testInstance *testing.T) {
	fileSystem := newStubFileSystem()
	fileSystem.addFile(adminModulePathConstant, moduleContentConstant)

	command, outputBuffer := buildTestCommand(testInstance, fileSystem)
	command.SetArgs([]string{adminModulePathConstant})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, fileSystem.files, adminTargetPathConstant)
	require.Contains(testInstance, outputBuffer.String(), "MOVED: "+adminModulePathConstant)
	require.Contains(testInstance, outputBuffer.String(), "Processed: 1")
}

func TestCommandReadsEntryListFile(testInstance *testing.T) {
	fileSystem := newStubFileSystem()
	fileSystem.addFile(adminModulePathConstant, moduleContentConstant)
	fileSystem.addFile("/workspace/list.txt", adminModulePathConstant+"\n")

	command, outputBuffer := buildTestCommand(testInstance, fileSystem)
	command.SetArgs([]string{"--list", "/workspace/list.txt"})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, fileSystem.files, adminTargetPathConstant)
	require.Contains(testInstance, outputBuffer.String(), "Processed: 1")
}

func TestCommandReadsEntryListFromStandardInput(testInstance *testing.T) {
	fileSystem := newStubFileSystem()
	fileSystem.addFile(adminModulePathConstant, moduleContentConstant)

	command, outputBuffer := buildTestCommand(testInstance, fileSystem)
	command.SetIn(strings.NewReader(adminModulePathConstant + "\n"))
	command.SetArgs([]string{"--list", "-"})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, fileSystem.files, adminTargetPathConstant)
	require.Contains(testInstance, outputBuffer.String(), "Processed: 1")
}

func TestCommandFailsWithoutEntries(testInstance *testing.T) {
	command, _ := buildTestCommand(testInstance, newStubFileSystem())
	command.SetArgs([]string{})

	require.EqualError(testInstance, command.Execute(), "no module files provided")
}

func TestCommandFailsWhenEntryListFileMissing(testInstance *testing.T) {
	command, _ := buildTestCommand(testInstance, newStubFileSystem())
	command.SetArgs([]string{"--list", "/workspace/missing.txt"})

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "unable to read entry list")
}

func TestCommandSucceedsDespiteConflicts(testInstance *testing.T) {
	fileSystem := newStubFileSystem()
	fileSystem.addFile(adminModulePathConstant, divergedContentConstant)
	fileSystem.addFile(adminTargetPathConstant, moduleContentConstant)

	command, outputBuffer := buildTestCommand(testInstance, fileSystem)
	command.SetArgs([]string{adminModulePathConstant})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, outputBuffer.String(), "CONFLICT (differing content)")
	require.Contains(testInstance, outputBuffer.String(), "Conflicts: 1")
}

func TestCommandUsesConfiguredEntryList(testInstance *testing.T) {
	fileSystem := newStubFileSystem()
	fileSystem.addFile(adminModulePathConstant, moduleContentConstant)
	fileSystem.addFile("/workspace/configured.txt", adminModulePathConstant+"\n")

	builder := flatten.CommandBuilder{
		FileSystem: fileSystem,
		ConfigurationProvider: func() flatten.CommandConfiguration {
			return flatten.CommandConfiguration{EntryListPath: " /workspace/configured.txt "}
		},
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(outputBuffer)
	command.SetArgs([]string{})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, fileSystem.files, adminTargetPathConstant)
	require.Contains(testInstance, outputBuffer.String(), "Processed: 1")
}
