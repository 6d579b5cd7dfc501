// Package config holds the snapshot configuration, its compiled-in defaults and the
// optional YAML and ignore-file overlays.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/snapshot/internal/types"
	"github.com/temirov/snapshot/internal/utils"
)

const (
	// ConfigFileName is the optional configuration file looked up in the root directory.
	ConfigFileName = ".snapshot.yaml"
	// IgnoreFileName lists additional ignored names, one per line.
	IgnoreFileName = ".snapshotignore"

	// DefaultOutputDirectory is relative to the root directory and is ignored by default.
	DefaultOutputDirectory = "_scripts"
	// DefaultOutputName is the base name shared by both artifacts.
	DefaultOutputName = "project_context"
	// DefaultTokenModel selects the tiktoken encoding used when token counting is enabled.
	DefaultTokenModel = "gpt-4o"

	commentPrefix = "#"
)

// Configuration drives one snapshot run.
type Configuration struct {
	RootDirectory   string
	OutputDirectory string
	OutputName      string
	Extensions      []string
	IgnoreNames     []string
	LanguageTags    map[string]string
	WriteJSON       bool
	WriteMarkdown   bool
	Tokens          TokenConfiguration
	CopyToClipboard bool
}

// TokenConfiguration controls token counting.
type TokenConfiguration struct {
	Enabled bool
	Model   string
}

// DefaultConfiguration returns the built-in configuration for rootDirectory.
func DefaultConfiguration(rootDirectory string) Configuration {
	return Configuration{
		RootDirectory:   rootDirectory,
		OutputDirectory: DefaultOutputDirectory,
		OutputName:      DefaultOutputName,
		Extensions: []string{
			".js", ".jsx", ".ts", ".tsx", ".html", ".css", ".json",
			".md", ".mjs", ".cjs", ".gitignore", ".mdx",
		},
		IgnoreNames: []string{
			"node_modules", ".git", ".next", "dist", "build", "out",
			".cache", ".swc", ".vscode", "package-lock.json", ".env",
			DefaultOutputDirectory,
		},
		LanguageTags: map[string]string{
			".js":        "javascript",
			".jsx":       "javascript",
			".mjs":       "javascript",
			".cjs":       "javascript",
			".ts":        "typescript",
			".tsx":       "typescript",
			".html":      "html",
			".css":       "css",
			".json":      "json",
			".md":        "markdown",
			".mdx":       "markdown",
			".gitignore": types.DefaultLanguageTag,
		},
		WriteJSON:     true,
		WriteMarkdown: true,
		Tokens: TokenConfiguration{
			Model: DefaultTokenModel,
		},
	}
}

// ResolvedOutputDirectory returns the output directory, resolving relative values against the root.
func (configuration Configuration) ResolvedOutputDirectory() string {
	if filepath.IsAbs(configuration.OutputDirectory) {
		return filepath.Clean(configuration.OutputDirectory)
	}
	return filepath.Join(configuration.RootDirectory, configuration.OutputDirectory)
}

// LanguageTag returns the fenced-block language for a relative path.
func (configuration Configuration) LanguageTag(relativePath string) string {
	extension := filepath.Ext(relativePath)
	if tag, found := configuration.LanguageTags[extension]; found && tag != "" {
		return tag
	}
	return types.DefaultLanguageTag
}

// LoadIgnoreFileNames reads ignored names from ignoreFilePath.
// Blank lines and lines starting with # are skipped. A missing file yields no names.
//
// #nosec G304
func LoadIgnoreFileNames(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var ignoredNames []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		ignoredNames = append(ignoredNames, strings.Trim(trimmedLine, "/"))
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return utils.DeduplicatePatterns(ignoredNames), nil
}
