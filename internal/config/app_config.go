package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/snapshot/internal/utils"
)

// keyDelimiter replaces viper's default "." so extension keys such as ".ts" stay intact.
const keyDelimiter = "::"

const defaultRootDirectory = "."

// LoadOptions controls how configuration is discovered.
// An empty RootDirectory lets the configuration file choose the root, falling back to the working directory.
type LoadOptions struct {
	RootDirectory    string
	ExplicitFilePath string
}

// FileConfiguration mirrors the YAML configuration file. Unset values keep their defaults.
type FileConfiguration struct {
	Root       string                  `mapstructure:"root"`
	Output     OutputFileConfiguration `mapstructure:"output"`
	Extensions []string                `mapstructure:"extensions"`
	Ignore     []string                `mapstructure:"ignore"`
	Languages  map[string]string       `mapstructure:"languages"`
	Tokens     TokenFileConfiguration  `mapstructure:"tokens"`
	Clipboard  *bool                   `mapstructure:"clipboard"`
}

// OutputFileConfiguration configures artifact placement and toggles.
type OutputFileConfiguration struct {
	Directory string `mapstructure:"directory"`
	Name      string `mapstructure:"name"`
	JSON      *bool  `mapstructure:"json"`
	Markdown  *bool  `mapstructure:"markdown"`
}

// TokenFileConfiguration controls token counting defaults.
type TokenFileConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// LoadConfiguration builds the configuration for a run: defaults, then the configuration file,
// then names listed in the root ignore file.
func LoadConfiguration(options LoadOptions) (Configuration, error) {
	rootDirectory := options.RootDirectory
	if rootDirectory == "" {
		rootDirectory = defaultRootDirectory
	}
	absoluteRootDirectory, absoluteError := filepath.Abs(rootDirectory)
	if absoluteError != nil {
		return Configuration{}, fmt.Errorf("resolve root directory %s: %w", rootDirectory, absoluteError)
	}

	configurationPath := resolveConfigPath(absoluteRootDirectory, options.ExplicitFilePath)
	fileConfiguration, loadError := loadConfigurationFromPath(configurationPath, options.ExplicitFilePath != "")
	if loadError != nil {
		return Configuration{}, loadError
	}
	if options.RootDirectory == "" && fileConfiguration.Root != "" {
		absoluteRootDirectory = resolveConfiguredRoot(configurationPath, fileConfiguration.Root)
	}

	configuration := DefaultConfiguration(absoluteRootDirectory).Apply(fileConfiguration)

	ignoreFileNames, ignoreError := LoadIgnoreFileNames(filepath.Join(absoluteRootDirectory, IgnoreFileName))
	if ignoreError != nil {
		return Configuration{}, fmt.Errorf("loading %s from %s: %w", IgnoreFileName, absoluteRootDirectory, ignoreError)
	}
	configuration.IgnoreNames = utils.DeduplicatePatterns(append(configuration.IgnoreNames, ignoreFileNames...))

	return configuration, nil
}

// resolveConfiguredRoot resolves a root taken from a configuration file relative to that file.
func resolveConfiguredRoot(configurationPath string, configuredRoot string) string {
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Join(filepath.Dir(configurationPath), configuredRoot)
}

func resolveConfigPath(rootDirectory, explicitPath string) string {
	if explicitPath == "" {
		return filepath.Join(rootDirectory, ConfigFileName)
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath
	}
	absolutePath, absoluteError := filepath.Abs(explicitPath)
	if absoluteError != nil {
		return explicitPath
	}
	return absolutePath
}

// loadConfigurationFromPath reads the YAML file at path. A missing file is only an error when requested explicitly.
func loadConfigurationFromPath(path string, required bool) (FileConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) && !required {
			return FileConfiguration{}, nil
		}
		return FileConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return FileConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return FileConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var fileConfiguration FileConfiguration
	if decodeErr := reader.Unmarshal(&fileConfiguration); decodeErr != nil {
		return FileConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return fileConfiguration, nil
}

// Apply overlays the file configuration onto the receiver returning the combined configuration.
// Extension and ignore lists replace the defaults; language tags are merged per extension.
func (configuration Configuration) Apply(override FileConfiguration) Configuration {
	result := configuration
	if override.Output.Directory != "" {
		result.OutputDirectory = override.Output.Directory
	}
	if override.Output.Name != "" {
		result.OutputName = override.Output.Name
	}
	if override.Output.JSON != nil {
		result.WriteJSON = *override.Output.JSON
	}
	if override.Output.Markdown != nil {
		result.WriteMarkdown = *override.Output.Markdown
	}
	if extensions := utils.DeduplicatePatterns(override.Extensions); len(extensions) > 0 {
		result.Extensions = extensions
	}
	if ignoredNames := utils.DeduplicatePatterns(override.Ignore); len(ignoredNames) > 0 {
		result.IgnoreNames = ignoredNames
	}
	if len(override.Languages) > 0 {
		mergedTags := make(map[string]string, len(result.LanguageTags)+len(override.Languages))
		for extension, tag := range result.LanguageTags {
			mergedTags[extension] = tag
		}
		for extension, tag := range override.Languages {
			mergedTags[extension] = tag
		}
		result.LanguageTags = mergedTags
	}
	if override.Tokens.Enabled != nil {
		result.Tokens.Enabled = *override.Tokens.Enabled
	}
	if override.Tokens.Model != "" {
		result.Tokens.Model = override.Tokens.Model
	}
	if override.Clipboard != nil {
		result.CopyToClipboard = *override.Clipboard
	}
	return result
}
