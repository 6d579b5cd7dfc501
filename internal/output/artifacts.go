package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/snapshot/internal/types"
)

const (
	// JSONExtension is appended to the base name of the JSON artifact.
	JSONExtension = ".json"
	// MarkdownExtension is appended to the base name of the Markdown artifact.
	MarkdownExtension = ".md"
)

const (
	outputDirectoryPermissions = 0o755
	artifactFilePermissions    = 0o644

	errorWriteArtifactFormat  = "write %s artifact %s: %w"
	errorRenderArtifactFormat = "render %s artifact: %w"
)

// ErrOutputDirectory marks a failure to create the output directory. No artifact is written after it.
var ErrOutputDirectory = errors.New("create output directory")

// ArtifactOptions selects where and which artifacts are written.
type ArtifactOptions struct {
	Directory     string
	Name          string
	WriteJSON     bool
	WriteMarkdown bool
	LanguageTag   LanguageTagger
}

// Artifacts lists the files written by WriteArtifacts and the rendered Markdown document.
type Artifacts struct {
	Paths    []string
	Markdown string
}

type artifactWriter struct {
	kind   string
	path   string
	render func() ([]byte, error)
}

// WriteArtifacts writes the enabled artifacts into options.Directory.
// A directory creation failure wraps ErrOutputDirectory and stops immediately. Artifact
// failures are logged and joined; a failing artifact never prevents the other from being written.
func WriteArtifacts(snapshot types.ProjectSnapshot, options ArtifactOptions, logger *zap.Logger) (Artifacts, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var artifacts Artifacts
	if !options.WriteJSON && !options.WriteMarkdown {
		logger.Info("no artifacts enabled")
		return artifacts, nil
	}

	if mkdirError := os.MkdirAll(options.Directory, outputDirectoryPermissions); mkdirError != nil {
		return artifacts, fmt.Errorf("%w %s: %w", ErrOutputDirectory, options.Directory, mkdirError)
	}

	var writers []artifactWriter
	if options.WriteJSON {
		writers = append(writers, artifactWriter{
			kind: "json",
			path: filepath.Join(options.Directory, options.Name+JSONExtension),
			render: func() ([]byte, error) {
				return RenderJSON(snapshot)
			},
		})
	}
	if options.WriteMarkdown {
		writers = append(writers, artifactWriter{
			kind: "markdown",
			path: filepath.Join(options.Directory, options.Name+MarkdownExtension),
			render: func() ([]byte, error) {
				artifacts.Markdown = RenderMarkdown(snapshot, options.LanguageTag)
				return []byte(artifacts.Markdown), nil
			},
		})
	}

	var artifactErrors []error
	for _, writer := range writers {
		logger.Info("saving artifact", zap.String("kind", writer.kind), zap.String("path", writer.path))
		content, renderError := writer.render()
		if renderError != nil {
			wrappedError := fmt.Errorf(errorRenderArtifactFormat, writer.kind, renderError)
			logger.Error("artifact failed", zap.String("kind", writer.kind), zap.Error(wrappedError))
			artifactErrors = append(artifactErrors, wrappedError)
			continue
		}
		if writeError := os.WriteFile(writer.path, content, artifactFilePermissions); writeError != nil {
			wrappedError := fmt.Errorf(errorWriteArtifactFormat, writer.kind, writer.path, writeError)
			logger.Error("artifact failed", zap.String("kind", writer.kind), zap.Error(wrappedError))
			artifactErrors = append(artifactErrors, wrappedError)
			continue
		}
		artifacts.Paths = append(artifacts.Paths, writer.path)
	}

	return artifacts, errors.Join(artifactErrors...)
}
