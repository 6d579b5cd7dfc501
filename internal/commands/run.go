package commands

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/snapshot/internal/config"
	"github.com/temirov/snapshot/internal/output"
	"github.com/temirov/snapshot/internal/services/clipboard"
	"github.com/temirov/snapshot/internal/tokenizer"
	"github.com/temirov/snapshot/internal/types"
	"github.com/temirov/snapshot/internal/utils"
)

const (
	warningClipboardFormat = "copying markdown to clipboard: %w"
	errorTokenizerFormat   = "initializing tokenizer for %s: %w"
)

// Dependencies carries the collaborators of a run. Nil members fall back to defaults.
type Dependencies struct {
	Logger       *zap.Logger
	TokenCounter tokenizer.Counter
	Copier       clipboard.Copier
}

// Result describes a completed run.
type Result struct {
	Snapshot  types.ProjectSnapshot
	Summary   Summary
	Artifacts output.Artifacts
}

// Run builds the snapshot for configuration and writes the enabled artifacts.
// Failing to create the output directory aborts the run. Artifact failures are returned
// after every enabled artifact was attempted.
func Run(configuration config.Configuration, dependencies Dependencies) (Result, error) {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tokenCounter := dependencies.TokenCounter
	tokenModel := ""
	if configuration.Tokens.Enabled {
		if tokenCounter == nil {
			createdCounter, resolvedModel, counterError := tokenizer.NewCounter(tokenizer.Config{Model: configuration.Tokens.Model})
			if counterError != nil {
				return Result{}, fmt.Errorf(errorTokenizerFormat, configuration.Tokens.Model, counterError)
			}
			tokenCounter = createdCounter
			tokenModel = resolvedModel
		} else {
			tokenModel = tokenCounter.Name()
		}
	} else {
		tokenCounter = nil
	}

	snapshotter := &Snapshotter{
		Configuration: configuration,
		TokenCounter:  tokenCounter,
		TokenModel:    tokenModel,
		Logger:        logger,
	}
	snapshot, summary, buildError := snapshotter.Build()
	if buildError != nil {
		return Result{}, buildError
	}
	logger.Info(FormatSummaryLine(summary))

	result := Result{Snapshot: snapshot, Summary: summary}
	artifacts, writeError := output.WriteArtifacts(snapshot, output.ArtifactOptions{
		Directory:     configuration.ResolvedOutputDirectory(),
		Name:          configuration.OutputName,
		WriteJSON:     configuration.WriteJSON,
		WriteMarkdown: configuration.WriteMarkdown,
		LanguageTag:   configuration.LanguageTag,
	}, logger)
	result.Artifacts = artifacts
	if errors.Is(writeError, output.ErrOutputDirectory) {
		return result, writeError
	}

	if configuration.CopyToClipboard {
		document := artifacts.Markdown
		if document == "" {
			document = output.RenderMarkdown(snapshot, configuration.LanguageTag)
		}
		copier := dependencies.Copier
		if copier == nil {
			copier = clipboard.NewService()
		}
		if copyError := copier.Copy(document); copyError != nil {
			logger.Warn(utils.OutcomeWarning, zap.Error(fmt.Errorf(warningClipboardFormat, copyError)))
		} else {
			logger.Info("copied markdown to clipboard")
		}
	}

	if writeError != nil {
		return result, writeError
	}
	logger.Info("done", zap.Strings("artifacts", artifacts.Paths))
	return result, nil
}
