package commands

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/snapshot/internal/config"
	"github.com/temirov/snapshot/internal/output"
	"github.com/temirov/snapshot/internal/tokenizer"
	"github.com/temirov/snapshot/internal/types"
	"github.com/temirov/snapshot/internal/utils"
)

// Summary aggregates the outcome of a capture pass.
type Summary struct {
	CapturedFiles int
	SkippedFiles  int
	TotalBytes    int64
	TotalTokens   int
	TokenModel    string
}

// Snapshotter builds a ProjectSnapshot using the configured filters.
type Snapshotter struct {
	Configuration config.Configuration
	TokenCounter  tokenizer.Counter
	TokenModel    string
	Logger        *zap.Logger
}

// Build traverses the root directory, captures every candidate and renders the file tree.
// Unreadable files are logged and left out; only traversal setup failures are returned.
func (snapshotter *Snapshotter) Build() (types.ProjectSnapshot, Summary, error) {
	logger := snapshotter.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	absoluteRootPath, absolutePathError := filepath.Abs(snapshotter.Configuration.RootDirectory)
	if absolutePathError != nil {
		return types.ProjectSnapshot{}, Summary{}, fmt.Errorf(errorAbsolutePathFormat, snapshotter.Configuration.RootDirectory, absolutePathError)
	}
	logger.Info("processing project", zap.String("root", absoluteRootPath))

	candidates, traverseError := Traverse(
		absoluteRootPath,
		snapshotter.Configuration.IgnoreNames,
		snapshotter.Configuration.Extensions,
		snapshotter.outputPaths(),
		logger,
	)
	if traverseError != nil {
		return types.ProjectSnapshot{}, Summary{}, traverseError
	}

	summary := Summary{TokenModel: snapshotter.TokenModel}
	records := make([]types.FileRecord, 0, len(candidates))
	for _, candidate := range candidates {
		capturedFile, captureError := Capture(candidate)
		if captureError != nil {
			logger.Warn(utils.OutcomeWarning, zap.String("path", candidate.RelativePath), zap.Error(captureError))
			summary.SkippedFiles++
			continue
		}

		fields := []zap.Field{
			zap.String("path", capturedFile.Record.Path),
			zap.Float64("size_kb", utils.Kilobytes(capturedFile.SizeBytes)),
		}
		if snapshotter.TokenCounter != nil {
			tokens, tokenError := tokenizer.CountContent(snapshotter.TokenCounter, capturedFile.Record.Content)
			if tokenError != nil {
				logger.Warn(utils.OutcomeWarning, zap.String("path", capturedFile.Record.Path), zap.NamedError("token_error", tokenError))
			} else {
				summary.TotalTokens += tokens
				fields = append(fields, zap.Int("tokens", tokens))
			}
		}
		logger.Info(utils.OutcomeAccepted, fields...)

		records = append(records, capturedFile.Record)
		summary.CapturedFiles++
		summary.TotalBytes += capturedFile.SizeBytes
	}

	projectName := filepath.Base(absoluteRootPath)
	snapshot := types.ProjectSnapshot{
		ProjectName: projectName,
		CodeFiles:   records,
	}
	snapshot.FileTree = output.RenderTree(projectName, snapshot.Paths())

	return snapshot, summary, nil
}

// outputPaths lists the output directory and the artifact files so earlier snapshots are never captured.
// The artifact files matter when the output directory is the root itself.
func (snapshotter *Snapshotter) outputPaths() []string {
	configuration := snapshotter.Configuration
	outputDirectory := configuration.ResolvedOutputDirectory()
	return []string{
		outputDirectory,
		filepath.Join(outputDirectory, configuration.OutputName+output.JSONExtension),
		filepath.Join(outputDirectory, configuration.OutputName+output.MarkdownExtension),
	}
}

// FormatSummaryLine formats a Summary into the console summary line.
func FormatSummaryLine(summary Summary) string {
	label := "files"
	if summary.CapturedFiles == 1 {
		label = "file"
	}
	extra := ""
	if summary.SkippedFiles > 0 {
		extra = fmt.Sprintf(", %d skipped", summary.SkippedFiles)
	}
	if summary.TotalTokens > 0 {
		extra += fmt.Sprintf(", %d tokens", summary.TotalTokens)
		if summary.TokenModel != "" {
			extra += fmt.Sprintf(" (model: %s)", summary.TokenModel)
		}
	}
	return fmt.Sprintf("Summary: %d %s, %s%s", summary.CapturedFiles, label, utils.FormatFileSize(summary.TotalBytes), extra)
}
