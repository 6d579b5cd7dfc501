package utils_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/snapshot/internal/utils"
)

const nodeModulesDirectoryName = "node_modules"

func TestDeduplicatePatterns(testingInstance *testing.T) {
	result := utils.DeduplicatePatterns([]string{"dist", " dist ", "", "build", "dist"})
	expected := []string{"dist", "build"}
	if !reflect.DeepEqual(result, expected) {
		testingInstance.Fatalf("expected %v, got %v", expected, result)
	}
}

func TestRelativePathOrSelf(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()
	testCases := []struct {
		name     string
		fullPath string
		expected string
	}{
		{name: "root", fullPath: rootDirectory, expected: "."},
		{name: "direct_child", fullPath: filepath.Join(rootDirectory, "README.md"), expected: "README.md"},
		{name: "nested_child", fullPath: filepath.Join(rootDirectory, "src", "lib", "a.ts"), expected: "src/lib/a.ts"},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.name, func(subTest *testing.T) {
			actual := utils.RelativePathOrSelf(testCase.fullPath, rootDirectory)
			if actual != testCase.expected {
				subTest.Fatalf("expected %q, got %q", testCase.expected, actual)
			}
		})
	}
}

func TestHasAnySuffix(testingInstance *testing.T) {
	extensions := []string{".ts", ".gitignore", ".md"}
	testCases := []struct {
		name     string
		fileName string
		expected bool
	}{
		{name: "matching_extension", fileName: "index.ts", expected: true},
		{name: "dotfile_by_suffix", fileName: ".gitignore", expected: true},
		{name: "suffix_without_dot_boundary", fileName: "app.gitignore", expected: true},
		{name: "case_sensitive", fileName: "README.MD", expected: false},
		{name: "different_extension", fileName: "main.go", expected: false},
		{name: "longer_extension", fileName: "index.tsx", expected: false},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.name, func(subTest *testing.T) {
			actual := utils.HasAnySuffix(testCase.fileName, extensions)
			if actual != testCase.expected {
				subTest.Fatalf("expected %v for %s, got %v", testCase.expected, testCase.fileName, actual)
			}
		})
	}
}

func TestContainsIgnoredSegment(testingInstance *testing.T) {
	ignoredNames := []string{nodeModulesDirectoryName, "package-lock.json"}
	testCases := []struct {
		name         string
		relativePath string
		expected     bool
	}{
		{name: "top_level_directory", relativePath: "node_modules/pkg/index.js", expected: true},
		{name: "nested_directory", relativePath: "web/node_modules/index.js", expected: true},
		{name: "ignored_file_name", relativePath: "web/package-lock.json", expected: true},
		{name: "backslash_is_part_of_name", relativePath: `web\node_modules\index.js`, expected: false},
		{name: "backslash_name_with_ignored_segment", relativePath: `docs/node_modules/a\b.js`, expected: true},
		{name: "partial_segment_match", relativePath: "node_modules_backup/index.js", expected: false},
		{name: "clean_path", relativePath: "src/a.ts", expected: false},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.name, func(subTest *testing.T) {
			actual := utils.ContainsIgnoredSegment(testCase.relativePath, ignoredNames)
			if actual != testCase.expected {
				subTest.Fatalf("expected %v for %s, got %v", testCase.expected, testCase.relativePath, actual)
			}
		})
	}
}
