// Package commands contains the core logic of a snapshot run: traversal, filtering and capture.
package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/snapshot/internal/utils"
)

const (
	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorRootStatFormat is used when the root directory cannot be inspected.
	errorRootStatFormat = "inspecting root directory %s: %w"
	// errorRootNotDirectoryFormat is used when the root is not a directory.
	errorRootNotDirectoryFormat = "root %s is not a directory"
	// errorWalkFormat is used when the walk itself fails.
	errorWalkFormat = "walking %s: %w"
)

// Candidate is a file that passed the extension and ignore filters.
type Candidate struct {
	AbsolutePath string
	RelativePath string
}

// Traverse lists candidate files below rootDirectoryPath in walk order.
// Directories named in ignoredNames are never descended into. A file is a candidate when its
// name ends with one of the extensions and no segment of its relative path is an ignored name.
// Entries whose absolute path is listed in excludedPaths are skipped, and excluded directories
// are not descended into. Symbolic links to directories are never candidates.
// Entries that cannot be accessed are logged and skipped.
func Traverse(rootDirectoryPath string, ignoredNames []string, extensions []string, excludedPaths []string, logger *zap.Logger) ([]Candidate, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	absoluteRootPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}
	cleanedRootPath := filepath.Clean(absoluteRootPath)
	rootInfo, rootStatError := os.Stat(cleanedRootPath)
	if rootStatError != nil {
		return nil, fmt.Errorf(errorRootStatFormat, cleanedRootPath, rootStatError)
	}
	if !rootInfo.IsDir() {
		return nil, fmt.Errorf(errorRootNotDirectoryFormat, cleanedRootPath)
	}

	excludedPathSet := make(map[string]struct{}, len(excludedPaths))
	for _, excludedPath := range excludedPaths {
		absoluteExcludedPath, excludedPathError := filepath.Abs(excludedPath)
		if excludedPathError != nil {
			continue
		}
		excludedPathSet[filepath.Clean(absoluteExcludedPath)] = struct{}{}
	}

	var candidates []Candidate
	directoryWalkError := filepath.WalkDir(cleanedRootPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			logger.Warn(utils.OutcomeWarning, zap.String("path", walkedPath), zap.Error(accessError))
			if directoryEntry != nil && directoryEntry.IsDir() && walkedPath != cleanedRootPath {
				return filepath.SkipDir
			}
			return nil
		}

		_, excluded := excludedPathSet[walkedPath]
		if directoryEntry.IsDir() {
			if walkedPath != cleanedRootPath && (excluded || utils.ContainsString(ignoredNames, directoryEntry.Name())) {
				return filepath.SkipDir
			}
			return nil
		}

		if excluded || !utils.HasAnySuffix(directoryEntry.Name(), extensions) {
			return nil
		}
		if directoryEntry.Type()&fs.ModeSymlink != 0 && isDirectoryLink(walkedPath) {
			return nil
		}
		relativePath := utils.RelativePathOrSelf(walkedPath, cleanedRootPath)
		if utils.ContainsIgnoredSegment(relativePath, ignoredNames) {
			return nil
		}

		candidates = append(candidates, Candidate{
			AbsolutePath: walkedPath,
			RelativePath: relativePath,
		})
		return nil
	})
	if directoryWalkError != nil {
		return nil, fmt.Errorf(errorWalkFormat, cleanedRootPath, directoryWalkError)
	}

	return candidates, nil
}

// isDirectoryLink reports whether the symbolic link at linkPath resolves to a directory.
// Dangling links report false and are left for capture to reject.
func isDirectoryLink(linkPath string) bool {
	targetInfo, statError := os.Stat(linkPath)
	return statError == nil && targetInfo.IsDir()
}
