package flatten

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/modflat/internal/fsops"
	"github.com/temirov/modflat/internal/utils"
)

const (
	commandUseConstant              = "flatten [source ...]"
	commandShortDescriptionConstant = "Move mod.rs files to sibling-named files one level up"
	commandLongDescriptionConstant  = "flatten migrates each listed mod.rs file to a file named after its containing directory in the parent directory, preserving any pre-existing target under a .new.rs suffix and removing emptied module directories."
	entryListFlagNameConstant       = "list"
	entryListFlagUsageConstant      = "Path to a newline-delimited list of mod.rs files, or - for standard input"
	standardInputListPathConstant   = "-"
	noEntriesMessageConstant        = "no module files provided"
)

var errNoEntries = errors.New(noEntriesMessageConstant)

// MigrationExecutor abstracts the migration service for command wiring.
type MigrationExecutor interface {
	Execute(executionContext context.Context, options Options) (Report, error)
}

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ServiceProvider constructs a migration executor from dependencies.
type ServiceProvider func(dependencies Dependencies) (MigrationExecutor, error)

type commandOptions struct {
	debugLoggingEnabled bool
	entries             []Entry
}

// CommandBuilder assembles the flatten Cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	FileSystem            FileSystem
	Output                io.Writer
	ServiceProvider       ServiceProvider
}

// Build constructs the flatten command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE:          builder.runFlatten,
	}

	command.Flags().String(entryListFlagNameConstant, "", entryListFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) runFlatten(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger(options.debugLoggingEnabled)
	outputWriter := builder.resolveOutput(command)

	service, serviceError := builder.resolveService(Dependencies{
		Logger:     logger,
		FileSystem: builder.resolveFileSystem(),
		Output:     outputWriter,
	})
	if serviceError != nil {
		return serviceError
	}

	report, executionError := service.Execute(command.Context(), Options{Entries: options.entries})
	if executionError != nil {
		return executionError
	}

	WriteSummary(outputWriter, report)

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (commandOptions, error) {
	configuration := builder.resolveConfiguration()

	debugEnabled := configuration.EnableDebugLogging
	if command != nil {
		contextAccessor := utils.NewCommandContextAccessor()
		if logLevel, available := contextAccessor.LogLevel(command.Context()); available {
			if strings.EqualFold(logLevel, string(utils.LogLevelDebug)) {
				debugEnabled = true
			}
		}
	}

	entries := NewEntries(arguments)

	entryListPath := configuration.EntryListPath
	if command != nil && command.Flags().Changed(entryListFlagNameConstant) {
		flagValue, _ := command.Flags().GetString(entryListFlagNameConstant)
		entryListPath = strings.TrimSpace(flagValue)
	}

	if len(entryListPath) > 0 {
		listEntries, listError := builder.loadEntryList(command, entryListPath)
		if listError != nil {
			return commandOptions{}, listError
		}
		entries = append(entries, listEntries...)
	}

	if len(entries) == 0 {
		return commandOptions{}, errNoEntries
	}

	return commandOptions{
		debugLoggingEnabled: debugEnabled,
		entries:             entries,
	}, nil
}

func (builder *CommandBuilder) loadEntryList(command *cobra.Command, entryListPath string) ([]Entry, error) {
	if entryListPath == standardInputListPathConstant && command != nil {
		return ParseEntryList(command.InOrStdin())
	}
	return LoadEntryListFile(builder.resolveFileSystem(), entryListPath)
}

func (builder *CommandBuilder) resolveLogger(enableDebug bool) *zap.Logger {
	var logger *zap.Logger
	if builder.LoggerProvider != nil {
		logger = builder.LoggerProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if enableDebug {
		logger = logger.WithOptions(zap.IncreaseLevel(zapcore.DebugLevel))
	}
	return logger
}

func (builder *CommandBuilder) resolveOutput(command *cobra.Command) io.Writer {
	if builder.Output != nil {
		return builder.Output
	}
	if command != nil {
		return command.OutOrStdout()
	}
	return io.Discard
}

func (builder *CommandBuilder) resolveFileSystem() FileSystem {
	if builder.FileSystem != nil {
		return builder.FileSystem
	}
	return fsops.OSFileSystem{}
}

func (builder *CommandBuilder) resolveService(dependencies Dependencies) (MigrationExecutor, error) {
	if builder.ServiceProvider != nil {
		return builder.ServiceProvider(dependencies)
	}
	return NewService(dependencies)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}

	provided := builder.ConfigurationProvider()
	return provided.Sanitize()
}
