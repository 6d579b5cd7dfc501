// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/snapshot/internal/commands"
	"github.com/temirov/snapshot/internal/config"
	"github.com/temirov/snapshot/internal/utils"
)

const (
	configFlagName       = "config"
	outputFlagName       = "output"
	nameFlagName         = "name"
	jsonFlagName         = "json"
	markdownFlagName     = "markdown"
	tokensFlagName       = "tokens"
	modelFlagName        = "model"
	copyFlagName         = "copy"
	forceFlagName        = "force"
	versionFlagName      = "version"
	versionTemplate      = "snapshot version: %s\n"
	rootUse              = "snapshot [root]"
	rootShortDescription = "collect a project into JSON and Markdown context files"
	rootLongDescription  = `snapshot walks a project directory, keeps files whose names end with a configured
extension and whose paths contain no ignored name, and writes the result as a JSON record
and a Markdown document with a file tree.
Defaults can be overridden by .snapshot.yaml in the root directory, by .snapshotignore and by flags.`
	rootUsageExample = `  # Snapshot the current directory into ./_scripts
  snapshot

  # Write only the Markdown document for another project
  snapshot --json no ../web

  # Count tokens and copy the document to the clipboard
  snapshot --tokens --copy`
	initUse              = "init [root]"
	initShortDescription = "write a default " + config.ConfigFileName

	configFlagDescription   = "configuration file (default <root>/" + config.ConfigFileName + ")"
	outputFlagDescription   = "output directory, relative to the root unless absolute"
	nameFlagDescription     = "base name of the output files"
	jsonFlagDescription     = "write the JSON artifact"
	markdownFlagDescription = "write the Markdown artifact"
	tokensFlagDescription   = "count tokens of captured files"
	modelFlagDescription    = "tokenizer model used for token counting"
	copyFlagDescription     = "copy the Markdown document to the clipboard"
	forceFlagDescription    = "overwrite an existing configuration file"
	versionFlagDescription  = "display application version"
)

// Execute runs the snapshot application with the process arguments.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(logger, os.Stdout)
	rootCommand.SetArgs(normalizeToggleArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// runOptions stores flag values of the root command.
type runOptions struct {
	configPath      string
	outputDirectory string
	outputName      string
	writeJSON       bool
	writeMarkdown   bool
	countTokens     bool
	tokenModel      string
	copyToClipboard bool
}

// createRootCommand builds the root Cobra command.
func createRootCommand(logger *zap.Logger, standardOutput io.Writer) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	var showVersion bool
	var options runOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(standardOutput, versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			rootDirectory := ""
			if len(arguments) > 0 {
				rootDirectory = arguments[0]
			}
			configuration, loadError := config.LoadConfiguration(config.LoadOptions{
				RootDirectory:    rootDirectory,
				ExplicitFilePath: options.configPath,
			})
			if loadError != nil {
				return loadError
			}
			configuration = applyFlagOverrides(command, configuration, options)
			_, runError := commands.Run(configuration, commands.Dependencies{Logger: logger})
			return runError
		},
	}
	rootCommand.SetOut(standardOutput)

	flagSet := rootCommand.Flags()
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.StringVar(&options.outputDirectory, outputFlagName, config.DefaultOutputDirectory, outputFlagDescription)
	flagSet.StringVar(&options.outputName, nameFlagName, config.DefaultOutputName, nameFlagDescription)
	registerToggleFlag(flagSet, &options.writeJSON, jsonFlagName, true, jsonFlagDescription)
	registerToggleFlag(flagSet, &options.writeMarkdown, markdownFlagName, true, markdownFlagDescription)
	registerToggleFlag(flagSet, &options.countTokens, tokensFlagName, false, tokensFlagDescription)
	flagSet.StringVar(&options.tokenModel, modelFlagName, config.DefaultTokenModel, modelFlagDescription)
	registerToggleFlag(flagSet, &options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand(logger))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// applyFlagOverrides overlays explicitly set flags onto the loaded configuration.
func applyFlagOverrides(command *cobra.Command, configuration config.Configuration, options runOptions) config.Configuration {
	flagSet := command.Flags()
	if flagSet.Changed(outputFlagName) {
		configuration.OutputDirectory = options.outputDirectory
	}
	if flagSet.Changed(nameFlagName) {
		configuration.OutputName = options.outputName
	}
	if flagSet.Changed(jsonFlagName) {
		configuration.WriteJSON = options.writeJSON
	}
	if flagSet.Changed(markdownFlagName) {
		configuration.WriteMarkdown = options.writeMarkdown
	}
	if flagSet.Changed(tokensFlagName) {
		configuration.Tokens.Enabled = options.countTokens
	}
	if flagSet.Changed(modelFlagName) {
		configuration.Tokens.Model = options.tokenModel
	}
	if flagSet.Changed(copyFlagName) {
		configuration.CopyToClipboard = options.copyToClipboard
	}
	return configuration
}

// createInitCommand returns the init subcommand.
func createInitCommand(logger *zap.Logger) *cobra.Command {
	var force bool
	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rootDirectory := ""
			if len(arguments) > 0 {
				rootDirectory = arguments[0]
			}
			path, initError := config.InitializeConfiguration(config.InitOptions{RootDirectory: rootDirectory, Force: force})
			if initError != nil {
				return initError
			}
			logger.Info("configuration written", zap.String("path", path))
			return nil
		},
	}
	registerToggleFlag(initCommand.Flags(), &force, forceFlagName, false, forceFlagDescription)
	return initCommand
}
